package project

// Indexed is anything that carries a 1-based display index.
type Indexed interface {
	DisplayIndex() int
	SetDisplayIndex(int)
}

// List keeps entries addressable by a dense 1..N display index.
// Removing an entry shifts every later entry down by one, so callers
// must re-resolve indices after a removal.
type List[T Indexed] struct {
	noun  string
	items []T
}

// NewList creates an empty list. noun names the entries in error messages.
func NewList[T Indexed](noun string) *List[T] {
	return &List[T]{noun: noun}
}

func (l *List[T]) Len() int { return len(l.items) }

// Add appends item and gives it the next display index.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
	item.SetDisplayIndex(len(l.items))
}

// Get returns the entry at a 1-based index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 1 || index > len(l.items) {
		var zero T
		return zero, outOfRange(l.noun, index, len(l.items))
	}
	return l.items[index-1], nil
}

// Remove deletes the entry at index and renumbers the entries after it.
func (l *List[T]) Remove(index int) (T, error) {
	item, err := l.Get(index)
	if err != nil {
		return item, err
	}
	l.items = append(l.items[:index-1], l.items[index:]...)
	for i := index - 1; i < len(l.items); i++ {
		l.items[i].SetDisplayIndex(i + 1)
	}
	return item, nil
}

// Update applies fn to the entry at index. If fn fails the entry is
// expected to be left untouched.
func (l *List[T]) Update(index int, fn func(T) error) error {
	item, err := l.Get(index)
	if err != nil {
		return err
	}
	return fn(item)
}

// Find returns the first entry matching pred.
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range l.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// All returns the entries in display order. The slice is a copy, the
// entries are not.
func (l *List[T]) All() []T {
	return append([]T(nil), l.items...)
}
