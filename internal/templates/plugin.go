package templates

// PluginExample is the data for the plugin scaffolding templates.
type PluginExample struct {
	Package     string
	Name        string
	Command     string
	Description string
	APIVersion  int
	Output      string
}

var (
	// PluginSourceTemplate renders a Go plugin exporting every entry point.
	PluginSourceTemplate = Parse("plugin_source", `package main

import (
	"fmt"

	"{{.Package}}"
)

func GetName() string        { return "{{.Name}}" }
func GetCommand() string     { return "{{.Command}}" }
func GetDescription() string { return "{{.Description}}" }
func GetAPIVersion() int     { return plugin.APIVersion }

func Execute(args, packageManager string) plugin.ErrorCode {
	fmt.Println("Hello from the example plugin!")
	if args != "" {
		fmt.Printf("Arguments: %s\n", args)
	}
	fmt.Printf("Package manager: %s\n", packageManager)

	return plugin.ErrorCodeSuccess
}

func Init(ctx *plugin.Context) {
	ctx.Debug("{{.Command}} plugin initialized")
}

func BeforeCommand(ctx *plugin.Context) plugin.ErrorCode {
	ctx.Debug("before " + ctx.Command)

	return plugin.ErrorCodeSuccess
}

func AfterCommand(ctx *plugin.Context, result plugin.ErrorCode) {
	ctx.Debug("after " + ctx.Command + ": " + result.String())
}

func OnExit(ctx *plugin.Context) {
	ctx.Debug("{{.Command}} plugin exiting")
}

func Cleanup() {}
`)

	// PluginMakefileTemplate renders the Makefile building the example plugin.
	PluginMakefileTemplate = Parse("plugin_makefile", `PLUGIN := {{.Output}}

all: $(PLUGIN)

go.mod:
	go mod init archium-plugin-{{.Command}}
	go get {{.Package}}

$(PLUGIN): example.go go.mod
	go build -buildmode=plugin -o $(PLUGIN) example.go

clean:
	rm -f $(PLUGIN)

.PHONY: all clean
`)
)
