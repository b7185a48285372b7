package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cp-topic-list/site/topiclist"
)

var topicDifficultyDesc = map[int]string{
	0: "Suitable for beginners, like if your Codeforces rating is less than 1400.",
	1: "Suitable for experienced beginners, like if your Codeforces rating is around 1400-1800.",
	2: "For intermediate users, like if your Codeforces rating is around 1800-2200.",
	3: "For advanced users, like if your Codeforces rating is 2200+.",
	4: "For very advanced users, like if your Codeforces rating is 2600+. Or if you are curious about the topic.",
}

var topicImportanceDesc = map[int]string{
	1: "Rare and learn it for the fun of it.",
	2: "Occasional and it is good to know.",
	3: "Frequent and you should know this.",
}

// DifficultyDescriptor is one row of the Topic Difficulty table.
type DifficultyDescriptor struct {
	Code        int
	Title       string
	Color       string
	BgColor     string
	Description string
}

// ImportanceDescriptor is one row of the Topic Importance table.
type ImportanceDescriptor struct {
	Code        int
	Description string
}

// ProblemDifficultyDescriptor is one item of the Problem Difficulty legend.
type ProblemDifficultyDescriptor struct {
	Code  int
	Title string
	Color string
}

func topicDifficultyDescriptors() []DifficultyDescriptor {
	codes := topiclist.TopicDifficulties()
	descriptors := make([]DifficultyDescriptor, 0, len(codes))
	for _, code := range codes {
		descriptors = append(descriptors, DifficultyDescriptor{
			Code:        code,
			Title:       topiclist.TopicDifficultyTitle(code),
			Color:       topiclist.TopicDifficultyColor(code),
			BgColor:     topiclist.TopicDifficultyBgColor(code),
			Description: topicDifficultyDesc[code],
		})
	}
	return descriptors
}

func importanceDescriptors() []ImportanceDescriptor {
	codes := topiclist.TopicImportances()
	descriptors := make([]ImportanceDescriptor, 0, len(codes))
	for _, code := range codes {
		descriptors = append(descriptors, ImportanceDescriptor{
			Code:        code,
			Description: topicImportanceDesc[code],
		})
	}
	return descriptors
}

func problemDifficultyDescriptors() []ProblemDifficultyDescriptor {
	codes := topiclist.ProblemDifficulties()
	descriptors := make([]ProblemDifficultyDescriptor, 0, len(codes))
	for _, code := range codes {
		descriptors = append(descriptors, ProblemDifficultyDescriptor{
			Code:  code,
			Title: topiclist.ProblemDifficultyTitle(code),
			Color: topiclist.ProblemDifficultyColor(code),
		})
	}
	return descriptors
}

func topicDifficultyTable() g.Node {
	var rows []g.Node
	for _, d := range topicDifficultyDescriptors() {
		rows = append(rows, descriptionRow(d.Code,
			Div(
				Class("flex items-center"),
				difficultyBar(d.BgColor),
				badge(d.Title, d.Color),
			),
			d.Description,
		))
	}
	return descriptionTable("topic-difficulty-table", "Difficulty", rows)
}

func topicImportanceTable() g.Node {
	var rows []g.Node
	for _, d := range importanceDescriptors() {
		rows = append(rows, descriptionRow(d.Code, importanceStars(d.Code), d.Description))
	}
	return descriptionTable("topic-importance-table", "Importance", rows)
}

func problemDifficultyLegend() g.Node {
	var items []g.Node
	for _, d := range problemDifficultyDescriptors() {
		items = append(items, Li(
			g.Attr("data-code", strconv.Itoa(d.Code)),
			Class("mb-1"),
			badge(d.Title, d.Color),
		))
	}
	return Ul(
		ID("problem-difficulty-legend"),
		Class("list-disc pl-8 mb-2"),
		g.Group(items),
	)
}

func AboutPage(path string) g.Node {
	return Page(
		"About",
		path,
		[]g.Node{
			contentContainer(
				pageHeader("About the Topic List"),
				paragraph(g.Text("The Topic List is designed to provide structured learning paths for Competitive Programming. "+
					"Each topic is categorized by difficulty and importance to guide learners from basic to advanced levels.")),

				sectionHeading("", "Topics"),
				paragraph(
					g.Text("A topic is a concept or a technique that is used in solving problems. "+
						"In this topic list, not all topics are actual topics per se, some are useful techniques or an educational problem or resource "+
						"but contains ideas which can be used in future problems."),
					Br(), Br(),
					g.Text("Each topic is classified by difficulty and importance, and is accompanied by a list of resources, templates, and problems to practice. "+
						"The topics are categorized in a structured manner like all Number Theory topics are grouped together, "+
						"all Graph Theory topics are grouped together and so on. "+
						"Under each category, you will find some subcategories like under Data Structures you will find Segment Tree "+
						"and under this subcategory, you will find different variations and topics related to Segment Tree."),
				),

				sectionHeading("topic-difficulty", "Topic Difficulty"),
				paragraph(g.Text("Topics are classified into several difficulty levels:")),
				topicDifficultyTable(),
				Em(g.Text("Note that the difficulty levels are subjective and may vary depending on the learner's experience and familiarity with the topic.")),
				Br(),
				g.Text("Also it is hard to classify a topic based on Codeforces rating, as in Codeforces you can have a high rating without knowing barely any topic. "+
					"But these topics might be important in ICPC contests. "+
					"So, I just provided a rough estimate of the difficulty and you should adjust it according to your experience."),

				sectionHeading("topic-importance", "Topic Importance / Relevance"),
				paragraph(g.Text("Importance/Relevance is indicated by stars, which reflects the frequency, relevance and likelihood of topics appearing in a future contest.")),
				topicImportanceTable(),
				Em(g.Text("Note that some 3 star topics might not be that frequent in contests but they are important to know in Competitive Programming.")),

				P(Class("text-base mb-2 mt-6"), g.Text("Each topic has some resources, templates and practice problems.")),

				H2(Class("text-xl font-semibold mb-2"), g.Text("Resources")),
				paragraph(g.Text("A resource is a tutorial or a blog or a video that explains the topic. "+
					"Resources are listed in the recommended order of study. "+
					"But it would be better if you go through all the resources listed in the topic. "+
					"I have also tried to add some comments on the resources to mention in which part of the resource you will find the topic.")),

				sectionHeading("", "Templates"),
				paragraph(
					g.Text("A template is a code snippet that is used to solve problems related to the topic. "+
						"Templates are provided as a reference and it is highly recommended to create your own templates."),
					Br(), Br(),
					g.Text("You may not call it a template because some of them don’t support the generalized use of the topic. "+
						"But you can use them easily if you understand the topic and solve problems using that template."),
				),

				sectionHeading("", "Problems"),
				paragraph(g.Text("I have also attached some related problems to each topic so that you can practice the topic. "+
					"Problems are taken from various online judges like Codeforces, AtCoder, CodeChef, etc. "+
					"Starred problems are highly recommended for solving to grasp the topic thoroughly. "+
					"Problems are organized by their relevance and difficulty concerning the topic. "+
					"You can solve them in the given order.")),

				sectionHeading("problem-difficulty", "Problem Difficulty"),
				paragraph(g.Text("Problems are classified into several difficulty levels. "+
					"The difficulty means how hard the problem is w.r.t. to the difficulty level of this topic "+
					"(so it's not same as the topic difficulty level).")),
				problemDifficultyLegend(),
			),
		},
	)
}
