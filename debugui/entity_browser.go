package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/frameloop/ecs"
)

// Sort columns of the entity table.
const (
	ColumnEntity = iota
	ColumnComponents
	ColumnCount
)

// EntityRow is one line of the entity browser.
type EntityRow struct {
	ID             ecs.EntityId
	ComponentTypes []string
}

// EntityBrowser lists live entities with filtering, sorting and paging.
type EntityBrowser struct {
	rows          []EntityRow
	lastLen       int
	selected      ecs.EntityId
	filterText    string
	sortColumn    int
	sortAscending bool
	perPage       int
	page          int
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	if perPage <= 0 {
		perPage = 100
	}
	return &EntityBrowser{
		lastLen:       -1,
		sortAscending: true,
		perPage:       perPage,
	}
}

// Selected returns the entity picked in the table, or the zero id.
func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selected
}

func (eb *EntityBrowser) Render(world *ecs.Storage) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	// component inserts do not change Len; Refresh picks those up
	if world.Len() != eb.lastLen {
		eb.refresh(world)
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.page = 0
	}
	imgui.SameLine()
	if imgui.Button("Refresh") {
		eb.refresh(world)
	}

	filtered := FilterEntityRows(eb.rows, eb.filterText)
	start, end, pages := PageBounds(len(filtered), eb.perPage, eb.page)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			SortEntityRows(eb.rows, eb.sortColumn, eb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%d:%d", row.ID.Index(), row.ID.Generation())
			if imgui.SelectableBoolV(label, eb.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(row.ComponentTypes)))
		}

		imgui.EndTable()
	}

	if pages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.page > 0 {
			eb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.page < pages-1 {
			eb.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) refresh(world *ecs.Storage) {
	eb.rows = BuildEntityRows(world)
	eb.lastLen = world.Len()
	SortEntityRows(eb.rows, eb.sortColumn, eb.sortAscending)
	if !world.Alive(eb.selected) {
		eb.selected = 0
	}
}

// BuildEntityRows snapshots every live entity and its component type names.
func BuildEntityRows(world *ecs.Storage) []EntityRow {
	rows := make([]EntityRow, 0, world.Len())
	for id := range world.Entities() {
		types := world.ComponentTypes(id)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		rows = append(rows, EntityRow{ID: id, ComponentTypes: names})
	}
	return rows
}

// SortEntityRows orders rows in place by column. Ties keep entity order.
func SortEntityRows(rows []EntityRow, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b EntityRow) int {
		var c int
		switch column {
		case ColumnComponents:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		case ColumnCount:
			c = cmp.Compare(len(a.ComponentTypes), len(b.ComponentTypes))
		}
		if c == 0 {
			c = cmp.Compare(a.ID.Index(), b.ID.Index())
		}
		if !ascending {
			c = -c
		}
		return c
	})
}

// FilterEntityRows keeps rows whose index or component names contain text,
// ignoring case. An empty filter returns rows unchanged.
func FilterEntityRows(rows []EntityRow, text string) []EntityRow {
	if text == "" {
		return rows
	}

	needle := strings.ToLower(text)
	filtered := make([]EntityRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(fmt.Sprintf("%d", row.ID.Index()), needle) ||
			strings.Contains(strings.ToLower(strings.Join(row.ComponentTypes, " ")), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// PageBounds returns the [start, end) slice of page and the page count.
// Out-of-range pages are clamped.
func PageBounds(total, perPage, page int) (start, end, pages int) {
	if perPage <= 0 || total == 0 {
		return 0, total, 1
	}
	pages = (total + perPage - 1) / perPage
	page = max(0, min(page, pages-1))
	start = page * perPage
	end = min(start+perPage, total)
	return start, end, pages
}
