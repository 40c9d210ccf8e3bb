// Package app 提供饼图演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/piechart/pkg/config"
	"github.com/gonewx/piechart/pkg/embedded"
	"github.com/gonewx/piechart/pkg/game"
	"github.com/gonewx/piechart/pkg/scenes"
	"github.com/gonewx/piechart/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "piechart"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的配置文件路径，为空则使用内嵌的 data/piechart.yaml
	ConfigPath string
}

// App 是饼图演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	config          *config.PieChartAppConfig

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appConfig, err := loadAppConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	settingsManager := game.NewSettingsManager(openGdataManager())

	scene, err := scenes.NewPieChartScene(appConfig)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	log.Printf("[App] 初始化完成: window=%dx%d", appConfig.Window.Width, appConfig.Window.Height)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		config:          appConfig,
	}, nil
}

// loadAppConfig 加载配置：指定路径优先，否则读取内嵌配置，都不可用时使用默认值
func loadAppConfig(path string) (*config.PieChartAppConfig, error) {
	if path != "" {
		cfg, err := config.LoadPieChartConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 内嵌资源未初始化，使用默认配置")
		return config.DefaultPieChartAppConfig(), nil
	}

	if !embedded.Exists(config.DefaultConfigPath) {
		log.Printf("[Config] Warning: 内嵌配置 %s 不存在 (using defaults)", config.DefaultConfigPath)
		return config.DefaultPieChartAppConfig(), nil
	}
	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取内嵌配置失败: %w", err)
	}
	cfg, err := config.ParsePieChartConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内嵌配置: %s", config.DefaultConfigPath)
	return cfg, nil
}

// openGdataManager 打开跨平台存储，失败时返回 nil（设置仅保存在内存中）
func openGdataManager() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: 创建存储目录失败: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata 初始化失败: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settingsManager.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			// 进入全屏前记住窗口大小
			w, h := ebiten.WindowSize()
			a.settingsManager.SetWindowSize(w, h)
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: 保存设置失败: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Window.Width, a.config.Window.Height
}

// WindowSize 返回启动时应使用的窗口大小：已保存的设置优先，否则使用配置文件
func (a *App) WindowSize() (int, int) {
	return a.settingsManager.WindowSize(a.config.Window.Width, a.config.Window.Height)
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.config.Window.Title
}

// IsFullscreen 返回已保存的全屏设置
func (a *App) IsFullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// Shutdown 保存窗口设置并关闭当前场景
func (a *App) Shutdown() {
	if !utils.IsMobile() && !ebiten.IsFullscreen() {
		w, h := ebiten.WindowSize()
		if w > 0 && h > 0 {
			a.settingsManager.SetWindowSize(w, h)
		}
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}
	a.sceneManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}
