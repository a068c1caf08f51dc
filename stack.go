package calcium

import "errors"

// DefaultStackSize is the capacity of each of a context's stacks when no
// StackSize option is given.
const DefaultStackSize = 4096

var (
	// ErrOverflow is the error a stack reports when pushing at capacity.
	ErrOverflow = errors.New("calcium: stack overflow")
	// ErrUnderflow is the error a stack reports when popping or peeking while
	// empty.
	ErrUnderflow = errors.New("calcium: stack underflow")
)

// stack is a fixed-capacity LIFO. The backing array is allocated once and
// never grows.
type stack[T any] struct {
	data []T
	top  int
}

func newStack[T any](size int) stack[T] {
	return stack[T]{data: make([]T, size)}
}

func (s *stack[T]) push(v T) error {
	if s.top >= len(s.data) {
		return ErrOverflow
	}
	s.data[s.top] = v
	s.top++
	return nil
}

func (s *stack[T]) pop() (T, error) {
	var zero T
	if s.top == 0 {
		return zero, ErrUnderflow
	}
	s.top--
	v := s.data[s.top]
	// Don't hold on to big.Floats we've given away.
	s.data[s.top] = zero
	return v, nil
}

func (s *stack[T]) peek() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	return s.data[s.top-1], nil
}

func (s *stack[T]) len() int {
	return s.top
}

func (s *stack[T]) empty() bool {
	return s.top == 0
}

func (s *stack[T]) cap() int {
	return len(s.data)
}

// reset empties the stack.
func (s *stack[T]) reset() {
	var zero T
	for i := 0; i < s.top; i++ {
		s.data[i] = zero
	}
	s.top = 0
}
