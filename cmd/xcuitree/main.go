// Command xcuitree parses and queries XCUITest debug descriptions.
package main

import "github.com/devicelab-dev/xcuikit/pkg/cli"

func main() {
	cli.Execute()
}
