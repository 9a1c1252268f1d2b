package main

import (
	"flag"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	onmouseover = regexp.MustCompile(`(?i)onmouseover=`)
	cookieRead  = regexp.MustCompile(`\[\s*'coo'\s*\+\s*'kie'\s*\]|\['cookie'\]`)
)

// filter mimics a naive blacklist WAF
func filter(in string) string {
	in = onmouseover.ReplaceAllString(in, "")
	in = strings.ReplaceAll(in, "document", "")
	return strings.ReplaceAll(in, "http", "")
}

// executed judges whether the reflected payload would run and read the cookie
func executed(reflected string) bool {
	return strings.Contains(reflected, "location=") && cookieRead.MatchString(reflected)
}

func main() {
	addr := flag.String("addr", "127.0.0.1:8081", "listen address")
	hard := flag.Bool("hard", false, "filter handlers, identifiers and protocol tokens")
	secret := flag.String("flag", "Flare{local_test_flag}", "flag emitted when a payload executes")
	flag.Parse()

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("payload")
		if *hard {
			query = filter(query)
		}

		// Vulnerable reflection
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "<html><body><h1>Search Results</h1><p>You searched for: %s</p>", query)
		if *hard && executed(query) {
			fmt.Fprintf(w, "<!-- %s -->", *secret)
		}
		fmt.Fprint(w, "</body></html>")
	})

	mode := "open"
	if *hard {
		mode = "hard"
	}
	color.Cyan("[*] Vulnerable server (%s) running on http://%s", mode, *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		color.Red("[!] %v", err)
	}
}
