// Package stats computes aggregate figures over an already-fetched blog
// collection. The functions are pure: no I/O, no store access, no shared
// state, so callers may run them from any goroutine.
package stats

import "github.com/user/bloglist-go/blogs"

// TotalLikes sums the likes of every entry. An empty collection sums to 0.
func TotalLikes(entries []blogs.Blog) int {
	total := 0
	for _, b := range entries {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the entry with the most likes. On a tie the first
// maximal entry in input order wins. The boolean is false for an empty
// collection and the returned zero Blog must not be used.
func FavoriteBlog(entries []blogs.Blog) (blogs.Blog, bool) {
	if len(entries) == 0 {
		return blogs.Blog{}, false
	}
	favorite := entries[0]
	for _, b := range entries[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return favorite, true
}
