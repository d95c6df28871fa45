package main

import (
	"fmt"
	"reflect"

	"hwui/internal/core"
	"hwui/internal/layout"
	"hwui/internal/panel"
	"hwui/internal/wire"
)

type job struct {
	name  string
	theme panel.Theme
	data  []byte
	seed  int64
}

type result struct {
	name        string
	bytes       int
	params      int
	truncations int
	mutations   int
	violations  []string
}

func (r *result) failf(format string, args ...any) {
	r.violations = append(r.violations, fmt.Sprintf(format, args...))
}

// check decodes every prefix of j.data and mutations of it, and drives a
// panel through each decoded schema.
func check(j job, mutations int) (res result) {
	res = result{name: j.name, bytes: len(j.data)}
	defer func() {
		if v := recover(); v != nil {
			res.failf("panic: %v", v)
		}
	}()

	prev := 0
	for n := 0; n <= len(j.data); n++ {
		s := wire.Decode(j.data[:n], j.theme.Wire)
		count := s.Registry.Len()
		if count < prev {
			res.failf("prefix %d: %d params after %d", n, count, prev)
		}
		prev = count
		res.truncations++
	}
	res.params = prev

	full := wire.Decode(j.data, j.theme.Wire)
	a := layout.Compute(full.Registry, j.theme.Layout)
	b := layout.Compute(wire.Decode(j.data, j.theme.Wire).Registry, j.theme.Layout)
	if !reflect.DeepEqual(a, b) {
		res.failf("layout differs between identical decodes")
	}
	exercise(j.theme, j.data)

	rng := core.NewRNG(j.seed)
	buf := make([]byte, len(j.data))
	for i := 0; i < mutations && len(buf) > 0; i++ {
		copy(buf, j.data)
		for flips := 1 + rng.Intn(4); flips > 0; flips-- {
			buf[rng.Intn(len(buf))] = uint8(rng.Intn(256))
		}
		cut := len(buf) - rng.Intn(len(buf)+1)
		exercise(j.theme, buf[:cut])
		res.mutations++
	}
	return res
}

// exercise initializes a panel with data and sweeps the pointer across it.
func exercise(theme panel.Theme, data []byte) {
	p := panel.New(theme)
	p.Init(data)
	p.Tick()
	w, h := p.Size()
	for y := 0; y < h; y += 17 {
		p.MouseDown(w/2, y)
		p.MouseMove(w/3, y+40)
		p.MouseUp(w/3, y+40)
		p.MouseWheel(-1, w/2, y)
		p.Tick()
	}
	dump := make([]byte, p.ConfigSize())
	p.DumpConfig(dump)
	p.LoadConfig(dump)
	p.Tick()
}

// randomSchema encodes a schema with up to maxParams random parameters,
// including kinds and strings the decoder has to clamp.
func randomSchema(rng *core.RNG, opts wire.Options, maxParams int) []byte {
	params := make([]core.Parameter, rng.Intn(maxParams+1))
	for i := range params {
		lo := float32(rng.Intn(200) - 100)
		p := core.Parameter{
			Kind:  core.Kind(rng.Intn(4)),
			Label: randomString(rng, 40),
			Group: fmt.Sprintf("G%d", rng.Intn(20)),
			Min:   lo,
			Max:   lo + float32(rng.Intn(300)),
			Step:  float32(rng.Intn(3)) * 0.5,
			Value: lo + rng.Float32()*50,
		}
		for k := rng.Intn(20); k > 0; k-- {
			p.Options = append(p.Options, core.Option{Value: float32(len(p.Options)), Label: randomString(rng, 12)})
		}
		params[i] = p
	}
	h := wire.Header{Name: randomString(rng, 70), Subtitle: randomString(rng, 20), Accent: 0xFF000000 | uint32(rng.Intn(1<<24))}
	return wire.Encode(h, params, opts)
}

func randomString(rng *core.RNG, limit int) string {
	b := make([]byte, rng.Intn(limit+1))
	for i := range b {
		b[i] = byte(' ' + rng.Intn(95))
	}
	return string(b)
}
