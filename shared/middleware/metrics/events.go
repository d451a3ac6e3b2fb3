package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Forum events counted by forum_events_total.
const (
	EventThreadCreated  = "thread_created"
	EventCommentCreated = "comment_created"
	EventCommentDeleted = "comment_deleted"
)

var forumEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forum_events_total",
		Help: "Successful forum writes by kind",
	},
	[]string{"event"},
)

func init() {
	// Zero series so dashboards see every event before the first write.
	for _, event := range []string{EventThreadCreated, EventCommentCreated, EventCommentDeleted} {
		forumEventsTotal.WithLabelValues(event)
	}
}

func RecordThreadCreated() {
	forumEventsTotal.WithLabelValues(EventThreadCreated).Inc()
}

func RecordCommentCreated() {
	forumEventsTotal.WithLabelValues(EventCommentCreated).Inc()
}

// RecordCommentDeleted counts soft deletions. A repeated delete of the same
// comment still counts since the request succeeded.
func RecordCommentDeleted() {
	forumEventsTotal.WithLabelValues(EventCommentDeleted).Inc()
}

// EventCounter returns the counter behind event.
func EventCounter(event string) prometheus.Counter {
	return forumEventsTotal.WithLabelValues(event)
}
