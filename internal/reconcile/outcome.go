package reconcile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"adaptive-mapper/internal/metadata"
)

// DefaultMessageCategory is the single bucket response messages are filed
// under unless WithMessagesByType is set.
const DefaultMessageCategory = "messages"

// Outcome is the classified result of one write.
//
// An item is either in Modified or in one or more Errors buckets, never
// both. Buckets and their contents keep first-seen response order.
type Outcome[T metadata.Entity] struct {
	Success  bool
	Messages *orderedmap.OrderedMap[string, []string]
	Modified *metadata.List[T]
	All      *metadata.List[T]
	Errors   *orderedmap.OrderedMap[string, *metadata.List[T]]
}

func newOutcome[T metadata.Entity](success bool) *Outcome[T] {
	return &Outcome[T]{
		Success:  success,
		Messages: orderedmap.New[string, []string](),
		Modified: metadata.NewList[T](),
		All:      metadata.NewList[T](),
		Errors:   orderedmap.New[string, *metadata.List[T]](),
	}
}

// HasFailures reports whether any item failed.
func (o *Outcome[T]) HasFailures() bool {
	return o.Errors.Len() > 0
}

// Failed lists every failed item once, in the order first filed.
func (o *Outcome[T]) Failed() *metadata.List[T] {
	out := metadata.NewList[T]()

	for pair := o.Errors.Oldest(); pair != nil; pair = pair.Next() {
		for _, e := range pair.Value.Items() {
			out.AppendUnique(e)
		}
	}

	return out
}

// ErrorFor returns the failure messages e is filed under.
func (o *Outcome[T]) ErrorFor(e T) []string {
	var reasons []string

	for pair := o.Errors.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Contains(e) {
			reasons = append(reasons, pair.Key)
		}
	}

	return reasons
}

func (o *Outcome[T]) addMessage(category, text string) {
	texts, _ := o.Messages.Get(category)
	o.Messages.Set(category, append(texts, text))
}

func (o *Outcome[T]) accept(e T) {
	o.Modified.AppendUnique(e)
}

// fail files e under reason and takes it out of Modified.
func (o *Outcome[T]) fail(reason string, e T) {
	if o.Modified.Contains(e) {
		_ = o.Modified.Remove(e)
	}

	bucket, ok := o.Errors.Get(reason)
	if !ok {
		bucket = metadata.NewList[T]()
		o.Errors.Set(reason, bucket)
	}

	bucket.AppendUnique(e)
}
