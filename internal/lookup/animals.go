package lookup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// AnimalSelectID is the id of the animal dropdown on the backend index page
const AnimalSelectID = "animal-select"

// ParseAnimalOptions extracts the non-empty option values of the
// <select id="animal-select"> element, in document order.
func ParseAnimalOptions(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	sel := findByID(doc, AnimalSelectID)
	if sel == nil {
		return nil, fmt.Errorf("index page has no #%s element", AnimalSelectID)
	}

	var animals []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "option" {
			if value := strings.TrimSpace(optionValue(n)); value != "" {
				animals = append(animals, value)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(sel)

	return animals, nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// optionValue mirrors the DOM: an option without a value attribute uses its text
func optionValue(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "value" {
			return a.Val
		}
	}
	return textContent(n)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
