// Package linkedlist implements a singly linked association list keyed by a comparable type.
// It is used as the bucket type of the separate chaining hash map but works on its own as well.
//
// A LinkedList is not safe for concurrent use.
package linkedlist

// Node - One key/value entry of a LinkedList
type Node[K comparable, V any] struct {
	Key   K
	Value V
	next  *Node[K, V]
}

// Next - Returns the following node or nil at the end of the list
func (N *Node[K, V]) Next() *Node[K, V] {
	return N.next
}

// LinkedList - Singly linked list holding at most one node per key. The zero value is an empty list.
type LinkedList[K comparable, V any] struct {
	head *Node[K, V]
	size int
}

// New - Returns a pointer to a new empty LinkedList
func New[K comparable, V any]() *LinkedList[K, V] {
	return &LinkedList[K, V]{}
}

// Head - Returns the first node or nil if the list is empty
func (L *LinkedList[K, V]) Head() *Node[K, V] {
	return L.head
}

// Len - Returns the number of nodes in the list
func (L *LinkedList[K, V]) Len() int {
	return L.size
}

// Insert - Appends a new node at the end of the list. If a node with the same key already exists its value
// is replaced instead.
//   - key is the identifier of the node
//   - value is the data to store
//
// It returns:
//   - added is true if a new node was appended and false if an existing node was updated
func (L *LinkedList[K, V]) Insert(key K, value V) (added bool) {
	if L.head == nil {
		L.head = &Node[K, V]{Key: key, Value: value}
		L.size++
		return true
	}

	last := L.head
	for n := L.head; n != nil; n = n.next {
		if n.Key == key {
			n.Value = value
			return false
		}
		last = n
	}

	last.next = &Node[K, V]{Key: key, Value: value}
	L.size++

	return true
}

// Find - Returns the node with matching key
//
// It returns:
//   - node is the matching node, nil if not found
//   - found is true if there was a matching node
func (L *LinkedList[K, V]) Find(key K) (node *Node[K, V], found bool) {
	for n := L.head; n != nil; n = n.next {
		if n.Key == key {
			return n, true
		}
	}

	return nil, false
}

// DeleteKey - Removes the node with matching key, returns false if there was none
func (L *LinkedList[K, V]) DeleteKey(key K) bool {
	return L.DeleteFunc(func(k K, _ V) bool { return k == key })
}

// DeleteFunc - Removes the first node for which match returns true, returns false if there was none
func (L *LinkedList[K, V]) DeleteFunc(match func(key K, value V) bool) bool {
	var prev *Node[K, V]
	for n := L.head; n != nil; n = n.next {
		if match(n.Key, n.Value) {
			if prev == nil {
				L.head = n.next
			} else {
				prev.next = n.next
			}
			n.next = nil
			L.size--
			return true
		}
		prev = n
	}

	return false
}

// Range - Calls fn for each node in list order until fn returns false
func (L *LinkedList[K, V]) Range(fn func(key K, value V) bool) {
	for n := L.head; n != nil; n = n.next {
		if !fn(n.Key, n.Value) {
			return
		}
	}
}

// DeleteValue - Removes the first node of list holding value, returns false if there was none
func DeleteValue[K comparable, V comparable](list *LinkedList[K, V], value V) bool {
	return list.DeleteFunc(func(_ K, v V) bool { return v == value })
}
