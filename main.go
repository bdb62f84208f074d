package main

import "github.com/harrisonoest/git-branch-search/cmd"

func main() {
	cmd.Execute()
}
