package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/frameloop/ecs"
	"github.com/plus3/frameloop/engine"
)

// ComponentInspector shows and edits the components of the entity selected
// in an EntityBrowser.
type ComponentInspector struct {
	browser *EntityBrowser
}

func NewComponentInspector(browser *EntityBrowser) *ComponentInspector {
	return &ComponentInspector{browser: browser}
}

func (ci *ComponentInspector) Render(world *ecs.Storage) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	selected := ci.browser.Selected()
	if selected.IsZero() || !world.Alive(selected) {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d (generation %d)", selected.Index(), selected.Generation()))
	imgui.Separator()

	for _, compType := range world.ComponentTypes(selected) {
		component := world.GetComponent(selected, compType)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			renderValue(reflect.ValueOf(component))
			imgui.TreePop()
		}
	}

	imgui.End()
}

// ResourceInspector lists every resource and edits exported fields in place.
type ResourceInspector struct {
	res *engine.Resources
}

func NewResourceInspector(res *engine.Resources) *ResourceInspector {
	return &ResourceInspector{res: res}
}

func (ri *ResourceInspector) Render() {
	if !imgui.BeginV("Resources", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Resources: %d", ri.res.Len()))
	imgui.Separator()

	ri.res.Each(func(typ reflect.Type, value any) {
		if imgui.TreeNodeStr(typ.String()) {
			renderValue(reflect.ValueOf(value))
			imgui.TreePop()
		}
	})

	imgui.End()
}

// renderValue draws the exported fields of the struct behind ptr.
func renderValue(ptr reflect.Value) {
	val := ptr
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			imgui.Text("nil")
			return
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
		return
	}

	for _, field := range fieldCache.Fields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.Pointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderField(field.Name, fieldVal)
	}
}

func renderField(name string, val reflect.Value) {
	label := "##" + name

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			SetField(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && v >= 0 {
			SetField(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			SetField(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			SetField(val, v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
			SetField(val, v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderValue(val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Type()))
		}
	}
}

// SetField assigns value to field when the kinds are compatible and the field
// is settable. It reports whether the assignment happened. Integer values
// that overflow the field are rejected.
func SetField(field reflect.Value, value any) bool {
	if !field.IsValid() || !field.CanSet() {
		return false
	}

	switch v := value.(type) {
	case int64:
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if field.OverflowInt(v) {
				return false
			}
			field.SetInt(v)
			return true
		}
	case uint64:
		switch field.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if field.OverflowUint(v) {
				return false
			}
			field.SetUint(v)
			return true
		}
	case float64:
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			field.SetFloat(v)
			return true
		}
	case bool:
		if field.Kind() == reflect.Bool {
			field.SetBool(v)
			return true
		}
	case string:
		if field.Kind() == reflect.String {
			field.SetString(v)
			return true
		}
	}
	return false
}
