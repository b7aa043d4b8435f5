package view

//Labels keeps one rendered image per text slot and renders it again only when the slot's text changes
type Labels[T any] struct {
	render  func(text string) T
	release func(T)
	slots   map[string]label[T]
}

type label[T any] struct {
	text string
	img  T
}

func NewLabels[T any](render func(text string) T, release func(T)) *Labels[T] {
	return &Labels[T]{render: render, release: release, slots: make(map[string]label[T])}
}

//Get returns the image for the slot, the previous image of the slot is released when the text changed
func (l *Labels[T]) Get(slot, text string) T {
	if old, ok := l.slots[slot]; ok {
		if old.text == text {
			return old.img
		}
		l.release(old.img)
	}
	img := l.render(text)
	l.slots[slot] = label[T]{text: text, img: img}
	return img
}

//Release frees every kept image
func (l *Labels[T]) Release() {
	for slot, lb := range l.slots {
		l.release(lb.img)
		delete(l.slots, slot)
	}
}
