// Command metablob inspects and converts blob point files.
package main

import "github.com/arloliu/metablob/internal/cli"

func main() {
	cli.Execute()
}
