package main

import "github.com/YCP-Swarm-Robotics-Capstone-2020-2021/swarm-website-visualization/cmd"

func main() {
	cmd.Execute()
}
