package ui

import (
	"fmt"
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cp-topic-list/site/topiclist"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("p-2"),
		g.Group(content),
	)
}

func sectionHeading(id string, text string) g.Node {
	return H2(
		g.If(id != "", ID(id)),
		Class("text-xl font-semibold mb-2 mt-4"),
		g.Text(text),
	)
}

func paragraph(children ...g.Node) g.Node {
	return P(Class("text-base mb-2"), g.Group(children))
}

// ---- Table Components ----

func descriptionTable(id string, keyHeader string, rows []g.Node) g.Node {
	return Table(
		ID(id),
		Class("min-w-full mb-4 text-left"),
		THead(
			Tr(
				Class("border-b"),
				Th(Class("py-2 pr-4 text-xs uppercase tracking-wider text-gray-600"), g.Text(keyHeader)),
				Th(Class("py-2 text-xs uppercase tracking-wider text-gray-600"), g.Text("Description")),
			),
		),
		TBody(g.Group(rows)),
	)
}

func descriptionRow(code int, key g.Node, description string) g.Node {
	return Tr(
		Class("border-b"),
		g.Attr("data-code", strconv.Itoa(code)),
		Td(Class("py-3 pr-4"), key),
		Td(Class("py-3"), g.Text(description)),
	)
}

// ---- Topic Components ----

// badge draws a label in the palette colour named by token.
func badge(title string, token string) g.Node {
	return Span(
		Class(fmt.Sprintf("inline-block px-2 py-0.5 rounded text-xs font-bold uppercase bg-%s-100 text-%s-800", token, token)),
		g.Text(title),
	)
}

func difficultyBar(token string) g.Node {
	return Span(Class(fmt.Sprintf("inline-block w-1 h-4 mr-1 bg-%s", token)))
}

func importanceStars(code int) g.Node {
	filled, total := topiclist.ImportanceStars(code)
	stars := make([]g.Node, 0, total)
	for i := 0; i < total; i++ {
		if i < filled {
			stars = append(stars, Span(Class("text-yellow-500"), g.Text("★")))
		} else {
			stars = append(stars, Span(Class("text-gray-300"), g.Text("☆")))
		}
	}
	return Div(
		Class("flex w-24"),
		g.Attr("aria-label", fmt.Sprintf("%d of %d stars", filled, total)),
		g.Group(stars),
	)
}

// ---- Message Components ----

func ErrorPage(code int, message string) g.Node {
	title := fmt.Sprintf("Error %d", code)
	if text := http.StatusText(code); text != "" {
		title = fmt.Sprintf("Error %d: %s", code, text)
	}
	return Page(
		title,
		"", // no current path
		[]g.Node{
			contentContainer(
				pageHeader(title),
				P(Class("text-gray-700 mb-4"), g.Text(message)),
				A(Href("/about"), Class("text-blue-600 hover:underline"), g.Text("Back to the About page")),
			),
		},
	)
}
