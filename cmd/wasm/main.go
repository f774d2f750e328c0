//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/colorpicker/internal/colormodel"
	"github.com/MeKo-Tech/colorpicker/internal/generator"
)

// PaletteRequest represents a palette request from JS
type PaletteRequest struct {
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

func errorResult(err error) interface{} {
	return map[string]interface{}{"error": err.Error()}
}

// toJS round-trips v through JSON so it can be handed to js.ValueOf.
func toJS(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return errorResult(err)
	}
	return out
}

// convertColor is called from JavaScript with a hex string.
func convertColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "missing arguments"}
	}

	c, err := colormodel.ParseColor(args[0].String())
	if err != nil {
		return errorResult(err)
	}
	return toJS(c)
}

// generatePalette is called from JavaScript with a JSON PaletteRequest.
func generatePalette(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "missing arguments"}
	}

	var req PaletteRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return errorResult(fmt.Errorf("failed to parse request: %w", err))
	}

	base, err := colormodel.HexToRGB(req.Hex)
	if err != nil {
		return errorResult(err)
	}
	palette, err := generator.Palette(base, generator.Options{Count: req.Count})
	if err != nil {
		return errorResult(err)
	}
	return toJS(palette)
}

func randomColor(this js.Value, args []js.Value) interface{} {
	c, err := generator.Random()
	if err != nil {
		return errorResult(err)
	}
	return toJS(c)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("colorpickerConvert", js.FuncOf(convertColor))
	js.Global().Set("colorpickerPalette", js.FuncOf(generatePalette))
	js.Global().Set("colorpickerRandom", js.FuncOf(randomColor))

	fmt.Println("colorpicker WASM module loaded")
	<-c
}
