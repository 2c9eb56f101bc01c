package backend

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/20after4/configdir"
)

const (
	configFile  = "config.toml"
	portableDir = "snackview_portable"
)

type App struct {
	Config *Config

	appName       string
	appVersionTag string
	configDir     string
	portableMode  bool
	isFirstLaunch bool // set by config file reader
}

func (a *App) VersionTag() string {
	return a.appVersionTag
}

func StartupApp(appName, appVersionTag string) (*App, error) {
	var confDir string
	portableMode := false
	if p := checkPortablePath(); p != "" {
		confDir = path.Join(p, "config")
		portableMode = true
	} else {
		confDir = configdir.LocalConfig(appName)
	}
	// ensure config dir exists
	configdir.MakePath(confDir)

	log.Printf("Starting %s...", appName)
	log.Printf("Using config dir: %s", confDir)

	a := &App{
		appName:       appName,
		appVersionTag: appVersionTag,
		configDir:     confDir,
		portableMode:  portableMode,
	}
	a.readConfig()
	a.Config.Application.LastLaunchedVersion = appVersionTag
	return a, nil
}

func (a *App) IsFirstLaunch() bool {
	return a.isFirstLaunch
}

func (a *App) IsPortableMode() bool {
	return a.portableMode
}

func checkPortablePath() string {
	if p, err := os.Executable(); err == nil {
		pdirPath := path.Join(filepath.Dir(p), portableDir)
		if s, err := os.Stat(pdirPath); err == nil && s.IsDir() {
			return pdirPath
		}
	}
	return ""
}

func (a *App) readConfig() {
	cfgPath := a.configFilePath()
	var cfgExists bool
	if _, err := os.Stat(cfgPath); err == nil {
		cfgExists = true
	}
	a.isFirstLaunch = !cfgExists
	cfg, err := ReadConfigFile(cfgPath, a.appVersionTag)
	if err != nil {
		if cfgExists {
			log.Printf("Error reading app config file: %v", err)
			backupCfgName := fmt.Sprintf("%s.bak", configFile)
			log.Printf("Config file may be malformed: copying to %s", backupCfgName)
			if err := backupFile(cfgPath, path.Join(a.configDir, backupCfgName)); err != nil {
				log.Printf("Error backing up config file: %v", err)
			}
		}
		cfg = DefaultConfig(a.appVersionTag)
	}
	a.Config = cfg
}

func (a *App) Shutdown() {
	a.SaveConfigFile()
}

func (a *App) SaveConfigFile() {
	if err := a.Config.WriteConfigFile(a.configFilePath()); err != nil {
		log.Printf("Error writing app config file: %v", err)
	}
}

func (a *App) configFilePath() string {
	return path.Join(a.configDir, configFile)
}

func backupFile(srcPath, dstPath string) error {
	b, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}
	return os.WriteFile(dstPath, b, 0644)
}
