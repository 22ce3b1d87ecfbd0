// Package config loads sceneui CLI settings with viper. Values come from
// built-in defaults, then the TOML file at Path, then SCENEUI_* environment
// variables, with later sources winning.
package config
