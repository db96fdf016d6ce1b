package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finisher restores the terminal (tcell.Screen satisfies it)
type Finisher interface {
	Fini()
}

var crashScreen atomic.Pointer[Finisher]

// SetCrashScreen registers the screen restored by HandleCrash
func SetCrashScreen(s Finisher) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := crashScreen.Load(); s != nil {
		(*s).Fini()
	} else {
		// Leave alternate screen, show cursor, reset attributes
		fmt.Fprint(os.Stdout, "\x1b[?1049l\x1b[?25h\x1b[0m")
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGRAVITY EATER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}
