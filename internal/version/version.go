package version

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"
)

//go:generate sh -c "printf %s $(git describe --tags) > version"
//go:generate sh -c "git status --porcelain > status"

var (
	//go:embed version
	tag string

	//go:embed status
	status string
)

type Info struct {
	Tag      string
	Dirty    bool
	Platform string
}

func (i Info) String() string {
	v := i.Tag
	if i.Dirty {
		v += "-dirty"
	}
	if i.Platform == "" {
		return v
	}
	return fmt.Sprintf("%s %s", v, i.Platform)
}

func Get() Info {
	return Info{
		Tag:      strings.TrimSpace(tag),
		Dirty:    strings.TrimSpace(status) != "",
		Platform: platform(),
	}
}

func Version() string {
	return Get().String()
}

func platform() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	var goos, goarch string
	for _, s := range info.Settings {
		switch s.Key {
		case "GOOS":
			goos = s.Value
		case "GOARCH":
			goarch = s.Value
		}
	}
	if goos == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", goos, goarch)
}
