package main

import (
	"flag"
	"log"

	"github.com/gonewx/piechart/pkg/app"
	"github.com/gonewx/piechart/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "配置文件路径（为空使用内嵌的 data/piechart.yaml）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	pieApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	w, h := pieApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(pieApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(pieApp.IsFullscreen())

	runErr := ebiten.RunGame(pieApp)
	pieApp.Shutdown()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
