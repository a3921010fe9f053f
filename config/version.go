package config

import "fmt"

func GetVersion() (uint8, uint8, uint8) {
	return 0, 1, 0
}

func GetVersionString() string {
	major, minor, patch := GetVersion()
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
