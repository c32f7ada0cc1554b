package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarkd_auth_attempts_total",
		Help: "Bearer authentication attempts by outcome.",
	}, []string{"outcome"})

	BookmarksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarkd_bookmarks_created_total",
		Help: "Bookmarks successfully created.",
	})

	BookmarksDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarkd_bookmarks_deleted_total",
		Help: "Bookmarks successfully deleted.",
	})

	OwnershipDeniedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarkd_ownership_denied_total",
		Help: "Bookmark accesses hidden by the ownership policy (foreign or missing id).",
	})

	TagAttachTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarkd_tag_attach_total",
		Help: "Tag attach/detach operations on bookmarks.",
	}, []string{"op"})
)
