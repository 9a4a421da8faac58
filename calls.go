package gs

import "unsafe"

// Init initializes the plugin core. Call once before Open and pair with
// Shutdown.
func (p *Plugin) Init() error {
	if p.init() < 0 {
		return ErrInitFailed
	}
	return nil
}

// Shutdown releases everything the plugin allocated since Init.
func (p *Plugin) Shutdown() {
	p.shutdown()
}

// Reset puts the plugin back into its power-on state.
func (p *Plugin) Reset() {
	p.reset()
}

// Configure opens the plugin's own configuration dialog, on plugins that
// have one. The call blocks until the dialog is dismissed.
func (p *Plugin) Configure() {
	p.configure()
}

// Open makes the plugin bring up its output window with the given title.
// win is a native window handle for the plugin to render into; pass nil to
// let the plugin create and own the window. The configured renderer is
// passed along. A negative status is reported as ErrOpenFailed; the plugin
// does not say more than that.
func (p *Plugin) Open(win unsafe.Pointer, title string) error {
	if p.open(win, title, int32(p.renderer)) < 0 {
		return ErrOpenFailed
	}
	return nil
}

// Close closes the plugin's output window. The module stays loaded; use
// Unload to release it.
func (p *Plugin) Close() {
	p.close()
}

// SetBaseMem hands the plugin the base of the privileged register block
// the host owns. The memory must stay valid until the window is closed.
// See the regs package.
func (p *Plugin) SetBaseMem(base unsafe.Pointer) {
	p.setBaseMem(base)
}

// SetSettingsDir points the plugin at the directory it keeps its
// configuration files in.
func (p *Plugin) SetSettingsDir(dir string) {
	p.setSettingsDir(dir)
}

// SetGameCRC identifies the running title, so the plugin can apply its
// per-game fixes. The meaning of options is up to the plugin.
func (p *Plugin) SetGameCRC(crc uint32, options int32) {
	p.setGameCRC(crc, options)
}

// Vsync signals the end of a frame. field is the field parity of the
// finished frame, 0 for even and 1 for odd scanlines.
func (p *Plugin) Vsync(field int) {
	p.vsync(int32(field))
}

// MakeSnapshot asks the plugin to capture the next frame into dir. The
// entry point reports nothing; capture failures stay inside the plugin.
func (p *Plugin) MakeSnapshot(dir string) {
	p.makeSnapshot(dir)
}
