package main

import "github.com/Sarokiasamy2023/AIStoryGenerator-sub001/cmd"

func main() {
	cmd.Execute()
}
