package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/snackview/snackview/backend"
	"github.com/snackview/snackview/res"
	"github.com/snackview/snackview/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func main() {
	flag.Parse()
	if *backend.FlagVersion {
		fmt.Println(res.AppVersion)
		return
	}
	if *backend.FlagHelp {
		flag.Usage()
		return
	}

	myApp, err := backend.StartupApp(res.AppName, res.AppVersionTag)
	if err != nil {
		log.Fatalf("fatal startup error: %v", err.Error())
	}
	stack := myApp.Config.Stack
	if backend.HaveCommandLineOptions() {
		backend.ApplyCommandLineOptions(&stack)
	}

	fyneApp := app.NewWithID("io.github.snackview.preview")

	w := float32(myApp.Config.Application.WindowWidth)
	if w <= 1 {
		w = 900
	}
	h := float32(myApp.Config.Application.WindowHeight)
	if h <= 1 {
		h = 600
	}
	previewWindow := ui.NewPreviewWindow(fyneApp, res.DisplayName, myApp, stack, fyne.NewSize(w, h))
	previewWindow.Window.SetCloseIntercept(previewWindow.Quit)
	previewWindow.Show()
	fyneApp.Run()

	log.Println("Running shutdown tasks...")
	myApp.Shutdown()
}
