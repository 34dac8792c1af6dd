package redditrss

import (
	"encoding/xml"
	"io"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"reddit-hotspots/internal/model"
)

var (
	scoreRe    = regexp.MustCompile(`^(\d+) points?`)
	commentsRe = regexp.MustCompile(`(\d+) comments?`)
)

type atomFeed struct {
	Entries []atomEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type atomEntry struct {
	ID        string `xml:"http://www.w3.org/2005/Atom id"`
	Title     string `xml:"http://www.w3.org/2005/Atom title"`
	Updated   string `xml:"http://www.w3.org/2005/Atom updated"`
	Published string `xml:"http://www.w3.org/2005/Atom published"`
	Author    struct {
		Name string `xml:"http://www.w3.org/2005/Atom name"`
	} `xml:"http://www.w3.org/2005/Atom author"`
	Links   []atomLink `xml:"http://www.w3.org/2005/Atom link"`
	Content string     `xml:"http://www.w3.org/2005/Atom content"`
	Summary string     `xml:"http://www.w3.org/2005/Atom summary"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
}

// Parse decodes an Atom document into posts, keeping document order.
// Elements outside the Atom namespace are ignored.
func Parse(r io.Reader, subreddit string) ([]model.Post, error) {
	var feed atomFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, err
	}
	posts := make([]model.Post, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		posts = append(posts, convertEntry(e, subreddit))
	}
	return posts, nil
}

func convertEntry(e atomEntry, subreddit string) model.Post {
	rawID := strings.TrimSpace(e.ID)
	postID := rawID[strings.LastIndex(rawID, ":")+1:]

	published := strings.TrimSpace(e.Updated)
	if published == "" {
		published = strings.TrimSpace(e.Published)
	}

	var permalink string
	if len(e.Links) > 0 {
		permalink = e.Links[0].Href
	}

	text := strings.TrimSpace(e.Content)
	if text == "" {
		text = strings.TrimSpace(e.Summary)
	}
	text = contentText(text)

	return model.Post{
		PostID:      postID,
		Subreddit:   subreddit,
		Title:       strings.TrimSpace(e.Title),
		Author:      strings.TrimSpace(e.Author.Name),
		Score:       extractMetric(scoreRe, text),
		NumComments: extractMetric(commentsRe, text),
		CreatedUTC:  createdUTC(published),
		Permalink:   permalink,
		URL:         permalink,
	}
}

// createdUTC converts an RFC 5322 style date into epoch seconds.
// Dates without a comma (e.g. ISO-8601) and unparseable dates yield 0.
func createdUTC(raw string) float64 {
	if raw == "" || !strings.Contains(raw, ",") {
		return 0
	}
	t, err := mail.ParseDate(raw)
	if err != nil {
		return 0
	}
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// contentText reduces the html content of an entry to its visible text.
func contentText(s string) string {
	if s == "" || !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

func extractMetric(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
