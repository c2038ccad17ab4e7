// Package posts generates the demo blog content shown on the lab's post
// pages. The generator is constructed with a seed so the content is
// deterministic within a process and reproducible across runs.
package posts

import (
	"sort"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const postCount = 5

type Comment struct {
	Author  string
	Text    string
	Replies []Comment
}

type Post struct {
	Index    int
	Title    string
	Author   string
	Text     string
	Date     time.Time
	ImageID  string
	Comments []Comment
}

// Generator produces a fixed set of fake posts. Content is generated
// lazily on first use and then shared; it is never mutated afterwards.
type Generator struct {
	seed uint64

	once  sync.Once
	posts []Post
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{seed: seed}
}

// Posts returns the demo posts, newest first.
func (g *Generator) Posts() []Post {
	g.once.Do(g.generate)
	return g.posts
}

// Post returns the post at the given list position.
func (g *Generator) Post(index int) (Post, bool) {
	list := g.Posts()
	if index < 0 || index >= len(list) {
		return Post{}, false
	}
	return list[index], true
}

func (g *Generator) generate() {
	f := gofakeit.New(g.seed)
	now := time.Now()

	posts := make([]Post, 0, postCount)
	for i := 0; i < postCount; i++ {
		posts = append(posts, Post{
			Title:    f.Sentence(4),
			Text:     f.Paragraph(1, 100, 8, " "),
			Author:   f.Name(),
			Date:     f.DateRange(now.AddDate(-2, 0, 0), now),
			ImageID:  f.UUID() + ".jpg",
			Comments: g.comments(f, true),
		})
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	for i := range posts {
		posts[i].Index = i
	}

	g.posts = posts
}

// comments builds 1-3 comments; top-level comments get one level of replies.
func (g *Generator) comments(f *gofakeit.Faker, replies bool) []Comment {
	n := f.Number(1, 3)
	out := make([]Comment, 0, n)
	for i := 0; i < n; i++ {
		c := Comment{
			Author: f.Name(),
			Text:   f.Paragraph(1, 3, 8, " "),
		}
		if replies {
			c.Replies = g.comments(f, false)
		}
		out = append(out, c)
	}
	return out
}
