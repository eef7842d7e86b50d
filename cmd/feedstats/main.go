package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/feedsnow/internal/feed"
)

var rootCmd = &cobra.Command{
	Use:   "feedstats <snapshot-file> [num-posts]",
	Short: "Extract post engagement metrics from a feed snapshot",
	Long:  "Parses an accessibility-tree text snapshot of a feed page and prints a markdown table of post dates, content, and engagement counts.",
	Args:  cobra.RangeArgs(1, 2),
	Run:   run,
}

func run(cmd *cobra.Command, args []string) {
	numPosts := feed.DefaultLimit
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			exitErr("num-posts must be a positive integer", args[1])
		}
		numPosts = n
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read snapshot", err)
	}

	posts := feed.ExtractPosts(string(data))
	if len(posts) == 0 {
		fmt.Println("No posts found in snapshot file")
		os.Exit(1)
	}

	fmt.Println(feed.FormatTable(posts, numPosts))
}

func exitErr(msg string, detail any) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, detail)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
