package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/gonewx/piechart/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内嵌默认配置文件路径
const DefaultConfigPath = "data/piechart.yaml"

// PieChartAppConfig 饼图演示程序完整配置
type PieChartAppConfig struct {
	Window   WindowConfig   `yaml:"window"`
	PieChart PieChartConfig `yaml:"pieChart"`
	Colors   ColorsConfig   `yaml:"colors"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PieChartConfig 饼图控件布局
type PieChartConfig struct {
	X            int     `yaml:"x"`
	Y            int     `yaml:"y"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	InitialValue float64 `yaml:"initialValue"` // 0.0 ~ 1.0
}

// ColorsConfig 颜色配置，格式为 "#RRGGBB" 或 "#RRGGBBAA"
type ColorsConfig struct {
	Background string `yaml:"background"`
	Disc       string `yaml:"disc"`
	Arc        string `yaml:"arc"`
	Pin        string `yaml:"pin"`
}

// ResolvedColors 解析后的颜色
type ResolvedColors struct {
	Background color.RGBA
	Disc       color.RGBA
	Arc        color.RGBA
	Pin        color.RGBA
}

// DefaultPieChartAppConfig 返回默认配置
func DefaultPieChartAppConfig() *PieChartAppConfig {
	cfg := &PieChartAppConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadPieChartConfig 从磁盘加载配置
func LoadPieChartConfig(path string) (*PieChartAppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParsePieChartConfig(data)
}

// ParsePieChartConfig 解析 YAML 配置，缺失字段使用默认值
func ParsePieChartConfig(data []byte) (*PieChartAppConfig, error) {
	var cfg PieChartAppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 设置默认值
func (c *PieChartAppConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 400
	}
	if c.Window.Height == 0 {
		c.Window.Height = 400
	}
	if c.Window.Title == "" {
		c.Window.Title = "Percentage Pie Chart"
	}

	// 未指定控件尺寸时铺满窗口
	if c.PieChart.Width == 0 {
		c.PieChart.Width = c.Window.Width - c.PieChart.X
	}
	if c.PieChart.Height == 0 {
		c.PieChart.Height = c.Window.Height - c.PieChart.Y
	}

	if c.Colors.Background == "" {
		c.Colors.Background = "#EEEEEE"
	}
	if c.Colors.Disc == "" {
		c.Colors.Disc = "#333333"
	}
	if c.Colors.Arc == "" {
		c.Colors.Arc = "#FFFF00"
	}
	if c.Colors.Pin == "" {
		c.Colors.Pin = "#B6B6B6"
	}
}

// Validate 校验配置
// 初始值超出范围会被静默修正，窗口尺寸和颜色非法时返回错误
func (c *PieChartAppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.PieChart.Width < 0 || c.PieChart.Height < 0 {
		return fmt.Errorf("invalid pie chart size %dx%d", c.PieChart.Width, c.PieChart.Height)
	}

	if c.PieChart.InitialValue < 0 {
		c.PieChart.InitialValue = 0
	}
	if c.PieChart.InitialValue > 1 {
		c.PieChart.InitialValue = 1
	}

	if _, err := c.Colors.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve 解析所有颜色
func (c ColorsConfig) Resolve() (ResolvedColors, error) {
	var out ResolvedColors
	fields := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"background", c.Background, &out.Background},
		{"disc", c.Disc, &out.Disc},
		{"arc", c.Arc, &out.Arc},
		{"pin", c.Pin, &out.Pin},
	}
	for _, f := range fields {
		clr, err := utils.ParseHexColor(f.src)
		if err != nil {
			return ResolvedColors{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = clr
	}
	return out, nil
}
