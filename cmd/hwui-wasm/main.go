//go:build js && wasm

// Command hwui-wasm exposes a panel to JavaScript as the global HWUI object.
// The page owns the canvas: it forwards pointer events and paints the RGBA
// frames tick returns.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"hwui/internal/core"
	"hwui/internal/panel"
)

type bridge struct {
	panel *panel.Panel
	step  *core.FixedStep
	log   *slog.Logger
	rgba  []byte
}

func newBridge(log *slog.Logger) *bridge {
	b := &bridge{step: core.NewFixedStep(60), log: log}
	b.reset(panel.MAME())
	return b
}

func (b *bridge) reset(theme panel.Theme) {
	b.panel = panel.New(theme, panel.WithChangeHandler(notify), panel.WithLogger(b.log))
	w, h := b.panel.Size()
	b.rgba = make([]byte, 4*w*h)
}

func notify(index int, value float32) {
	module := js.Global().Get("Module")
	if module.IsUndefined() || module.IsNull() {
		return
	}
	fn := module.Get("onParamChange")
	if fn.Type() != js.TypeFunction {
		return
	}
	fn.Invoke(index, value)
}

func (b *bridge) init(_ js.Value, args []js.Value) any {
	if len(args) > 1 && args[1].Type() == js.TypeString {
		theme, ok := panel.ThemeByName(args[1].String())
		if !ok {
			b.log.Warn("unknown theme, keeping current", "theme", args[1].String())
		} else if theme.Name != b.panel.Theme().Name {
			b.reset(theme)
		}
	}
	b.panel.Init(bytesArg(args, 0))
	return b.panel.Registry().Len()
}

func (b *bridge) mouseDown(_ js.Value, args []js.Value) any {
	b.panel.MouseDown(intArg(args, 0), intArg(args, 1))
	return nil
}

func (b *bridge) mouseUp(_ js.Value, args []js.Value) any {
	b.panel.MouseUp(intArg(args, 0), intArg(args, 1))
	return nil
}

func (b *bridge) mouseMove(_ js.Value, args []js.Value) any {
	b.panel.MouseMove(intArg(args, 0), intArg(args, 1))
	return nil
}

func (b *bridge) mouseWheel(_ js.Value, args []js.Value) any {
	b.panel.MouseWheel(intArg(args, 0), intArg(args, 1), intArg(args, 2))
	return nil
}

func (b *bridge) tick(js.Value, []js.Value) any {
	if !b.step.ShouldStep() || !b.panel.Tick() {
		return js.Null()
	}
	b.panel.Framebuffer().FillRGBA(b.rgba)
	out := js.Global().Get("Uint8ClampedArray").New(len(b.rgba))
	js.CopyBytesToJS(out, b.rgba)
	return out
}

func (b *bridge) loadConfig(_ js.Value, args []js.Value) any {
	return b.panel.LoadConfig(bytesArg(args, 0))
}

func (b *bridge) dumpConfig(js.Value, []js.Value) any {
	buf := make([]byte, b.panel.ConfigSize())
	n := b.panel.DumpConfig(buf)
	out := js.Global().Get("Uint8Array").New(n)
	js.CopyBytesToJS(out, buf[:n])
	return out
}

func (b *bridge) setParam(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return nil
	}
	b.panel.SetParam(intArg(args, 0), float32(args[1].Float()))
	return nil
}

func (b *bridge) getParam(_ js.Value, args []js.Value) any {
	return b.panel.Param(intArg(args, 0))
}

func (b *bridge) size(js.Value, []js.Value) any {
	w, h := b.panel.Size()
	return map[string]any{"width": w, "height": h}
}

func intArg(args []js.Value, i int) int {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return 0
	}
	return args[i].Int()
}

func bytesArg(args []js.Value, i int) []byte {
	if i >= len(args) || args[i].Type() != js.TypeObject {
		return nil
	}
	n := args[i].Get("length").Int()
	buf := make([]byte, n)
	js.CopyBytesToGo(buf, args[i])
	return buf
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	b := newBridge(log)

	api := map[string]any{}
	for name, fn := range map[string]func(js.Value, []js.Value) any{
		"init":       b.init,
		"mouseDown":  b.mouseDown,
		"mouseUp":    b.mouseUp,
		"mouseMove":  b.mouseMove,
		"mouseWheel": b.mouseWheel,
		"tick":       b.tick,
		"loadConfig": b.loadConfig,
		"dumpConfig": b.dumpConfig,
		"setParam":   b.setParam,
		"getParam":   b.getParam,
		"size":       b.size,
	} {
		api[name] = js.FuncOf(fn)
	}
	js.Global().Set("HWUI", api)
	log.Info("HWUI ready")
	select {}
}
