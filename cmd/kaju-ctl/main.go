package main

import (
	"fmt"
	"os"
	"strings"

	"kaju/internal/ipc"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: kaju-ctl say <text...> | kaju-ctl quit")
		os.Exit(2)
	}

	var msg ipc.ControlMessage
	switch os.Args[1] {
	case "say":
		msg = ipc.ControlMessage{Cmd: "utter", Text: strings.Join(os.Args[2:], " ")}
	case "quit":
		msg = ipc.ControlMessage{Cmd: "quit"}
	default:
		fmt.Println("unknown command:", os.Args[1])
		os.Exit(2)
	}

	if err := ipc.Send(msg); err != nil {
		fmt.Println("kaju not running:", err)
		os.Exit(1)
	}
}
