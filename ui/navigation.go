package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cp-topic-list/site/config"
)

type navLink struct {
	text string
	href string
}

var navLinks = []navLink{
	{text: "About", href: "/about"},
}

func navItem(link navLink, currentPath string) g.Node {
	class := "text-blue-600 hover:underline"
	if link.href == currentPath {
		class = "font-semibold text-gray-900"
	}
	return A(
		Href(link.href),
		Class(class),
		g.If(link.href == currentPath, g.Attr("aria-current", "page")),
		g.Text(link.text),
	)
}

func navigation(currentPath string) g.Node {
	items := make([]g.Node, 0, len(navLinks))
	for _, link := range navLinks {
		items = append(items, navItem(link, currentPath))
	}
	return Nav(
		Class("mb-6 border-b pb-4 flex items-center justify-between w-full"),
		A(Href("/"), Class("text-xl font-bold"), g.Text(config.SiteName)),
		Div(
			Class("flex items-center space-x-4"),
			g.Group(items),
		),
	)
}
