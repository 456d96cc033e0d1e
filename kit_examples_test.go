package inputkit_test

import (
	"fmt"
	"time"

	inputkit "github.com/romdo/go-inputkit"
	"github.com/romdo/go-inputkit/notify"
	"github.com/romdo/go-inputkit/validate"
)

func ExampleInit() {
	board := notify.NewBoard()
	cfg := inputkit.DefaultConfig()
	cfg.SearchWait = 50 * time.Millisecond

	kit := inputkit.Init(inputkit.Hooks{
		Renderer: board,
		Search: func(query string) {
			fmt.Println("Searching for:", query)
		},
	}, cfg)
	defer kit.Close()

	ok := kit.Submit(validate.Values{
		"subject":   "Quarterly report",
		"sender":    "not-an-email",
		"recipient": "c@d.com",
		"content":   "See attached.",
	})
	fmt.Println("submitted:", ok)
	for _, t := range board.Visible() {
		fmt.Printf("[%s] %s\n", t.Severity, t.Message)
	}

	kit.SearchInput("q")
	kit.SearchInput("qu")
	kit.SearchInput("quarterly")
	time.Sleep(100 * time.Millisecond)

	// Output:
	// submitted: false
	// [error] Please enter a valid email address for sender
	// Searching for: quarterly
}
