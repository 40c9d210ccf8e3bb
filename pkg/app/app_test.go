package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/piechart/pkg/config"
	"github.com/gonewx/piechart/pkg/embedded"
	"github.com/gonewx/piechart/pkg/scenes"
)

const testConfigYAML = `
window:
  width: 640
  height: 480
  title: Test Pie
pieChart:
  x: 20
  y: 20
  width: 200
  height: 200
  initialValue: 0.4
`

// TestLoadAppConfigFromPath 测试从磁盘加载配置
func TestLoadAppConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piechart.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadAppConfig(path)
	if err != nil {
		t.Fatalf("loadAppConfig failed: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Title != "Test Pie" {
		t.Errorf("unexpected window config: %+v", cfg.Window)
	}
	if cfg.PieChart.InitialValue != 0.4 {
		t.Errorf("initial value = %v, want 0.4", cfg.PieChart.InitialValue)
	}
}

// TestLoadAppConfigMissingFile 测试指定的配置文件不存在时报错
func TestLoadAppConfigMissingFile(t *testing.T) {
	if _, err := loadAppConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

// TestLoadAppConfigEmbedded 测试读取内嵌配置与降级
func TestLoadAppConfigEmbedded(t *testing.T) {
	t.Cleanup(func() { embedded.Init(nil) })

	t.Run("未初始化使用默认值", func(t *testing.T) {
		embedded.Init(nil)
		cfg, err := loadAppConfig("")
		if err != nil {
			t.Fatalf("loadAppConfig failed: %v", err)
		}
		def := config.DefaultPieChartAppConfig()
		if cfg.Window != def.Window {
			t.Errorf("window = %+v, want defaults %+v", cfg.Window, def.Window)
		}
	})

	t.Run("读取内嵌文件", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			config.DefaultConfigPath: &fstest.MapFile{Data: []byte(testConfigYAML)},
		})
		cfg, err := loadAppConfig("")
		if err != nil {
			t.Fatalf("loadAppConfig failed: %v", err)
		}
		if cfg.Window.Width != 640 {
			t.Errorf("width = %d, want 640", cfg.Window.Width)
		}
	})

	t.Run("内嵌文件缺失使用默认值", func(t *testing.T) {
		embedded.Init(fstest.MapFS{})
		cfg, err := loadAppConfig("")
		if err != nil {
			t.Fatalf("loadAppConfig failed: %v", err)
		}
		if cfg.Window.Width != 400 {
			t.Errorf("width = %d, want default 400", cfg.Window.Width)
		}
	})

	t.Run("内嵌文件非法", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			config.DefaultConfigPath: &fstest.MapFile{Data: []byte("window: [")},
		})
		if _, err := loadAppConfig(""); err == nil {
			t.Error("expected parse error")
		}
	})
}

// TestNewApp 测试应用初始化
func TestNewApp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "piechart.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a, err := NewApp(Config{Verbose: true, ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if w, h := a.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
	if w, h := a.WindowSize(); w != 640 || h != 480 {
		t.Errorf("WindowSize = %dx%d, want config size", w, h)
	}
	if a.Title() != "Test Pie" {
		t.Errorf("Title = %q", a.Title())
	}
	if a.IsFullscreen() {
		t.Error("fullscreen should default to false")
	}

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.PieChartScene)
	if !ok {
		t.Fatalf("current scene is %T, want *scenes.PieChartScene", a.GetSceneManager().GetCurrentScene())
	}
	if scene.Model().Value() != 0.4 {
		t.Errorf("model value = %v, want 0.4", scene.Model().Value())
	}

	// 保存的窗口大小优先于配置文件
	a.GetSettingsManager().SetWindowSize(800, 600)
	if w, h := a.WindowSize(); w != 800 || h != 600 {
		t.Errorf("WindowSize = %dx%d, want saved 800x600", w, h)
	}
}
