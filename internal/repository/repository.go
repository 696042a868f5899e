package repository

import "sort"

// Identifiable is implemented by every entity kept in a Document collection.
type Identifiable interface {
	EntityID() int
}

// NextID returns the id for a newly created entity: the last element's id
// plus one, or 1 for an empty collection. Ids are never recycled; deleting
// an earlier entity does not free its id. Assumes the collection is sorted
// ascending by id, which every mutation path maintains.
func NextID[T Identifiable](items []T) int {
	if len(items) == 0 {
		return 1
	}
	return items[len(items)-1].EntityID() + 1
}

// FindByID returns the entity with the given id, if present.
func FindByID[T Identifiable](items []T, id int) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends the entity. The caller precomputes a unique id via NextID.
func Insert[T Identifiable](items []T, entity T) []T {
	return append(items, entity)
}

// Replace removes the entity with the given id, re-inserts the updated
// entity and re-sorts the collection ascending by id.
func Replace[T Identifiable](items []T, id int, updated T) []T {
	out := Remove(items, id)
	out = append(out, updated)
	sort.Slice(out, func(i, j int) bool {
		return out[i].EntityID() < out[j].EntityID()
	})
	return out
}

// Remove filters out the entity with the given id. Removing an absent id is
// a no-op at this layer; callers check existence first so they can report
// not-found.
func Remove[T Identifiable](items []T, id int) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			out = append(out, item)
		}
	}
	return out
}
