package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// shadeFactor 立体边框明暗变化系数
const shadeFactor = 0.7

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		val = val<<8 | 0xff
	}
	return color.RGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}

// Brighter 返回更亮的颜色（用于凸起边框的高光边）
// 纯黑会被提亮为深灰，过暗的分量先抬到最小可见值再放大
func Brighter(c color.RGBA) color.RGBA {
	const minLevel = 3 // int(1 / (1 - shadeFactor))

	if c.R == 0 && c.G == 0 && c.B == 0 {
		return color.RGBA{R: minLevel, G: minLevel, B: minLevel, A: c.A}
	}
	brighten := func(v uint8) uint8 {
		f := float64(v)
		if v > 0 && v < minLevel {
			f = minLevel
		}
		f /= shadeFactor
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: brighten(c.R), G: brighten(c.G), B: brighten(c.B), A: c.A}
}

// Darker 返回更暗的颜色（用于阴影边和按下状态）
func Darker(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * shadeFactor),
		G: uint8(float64(c.G) * shadeFactor),
		B: uint8(float64(c.B) * shadeFactor),
		A: c.A,
	}
}
