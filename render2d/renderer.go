package render2d

// Renderer receives one frame of commands at a time.
type Renderer interface {
	BeginFrame()
	Submit(cmd RenderCommand)
	EndFrame()
}

// RenderTarget is the resource holding the active Renderer. Without it,
// render commands are drained and dropped.
type RenderTarget struct {
	Renderer Renderer
}

// NullRenderer counts what it is given and draws nothing.
type NullRenderer struct {
	Frames   int
	Commands int
	Sprites  int
}

func (r *NullRenderer) BeginFrame() {
	r.Frames++
}

func (r *NullRenderer) Submit(cmd RenderCommand) {
	r.Commands++
	if _, ok := cmd.(DrawSprite); ok {
		r.Sprites++
	}
}

func (r *NullRenderer) EndFrame() {}

// RecordingRenderer keeps the commands of the last completed frame.
type RecordingRenderer struct {
	pending []RenderCommand
	Last    []RenderCommand
}

func (r *RecordingRenderer) BeginFrame() {
	r.pending = r.pending[:0]
}

func (r *RecordingRenderer) Submit(cmd RenderCommand) {
	r.pending = append(r.pending, cmd)
}

func (r *RecordingRenderer) EndFrame() {
	r.Last = append(r.Last[:0], r.pending...)
}
