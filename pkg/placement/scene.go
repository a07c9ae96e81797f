package placement

import (
	"github.com/philipparndt/goroom/pkg/geometry"
)

// Scene owns the selectable set of placed objects and the current
// selection. Place and Delete commands add and remove objects here.
type Scene struct {
	objects  []*PlacedObject
	selected *PlacedObject
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Objects returns the placed objects in placement order
func (s *Scene) Objects() []*PlacedObject {
	return s.objects
}

// Add makes an object selectable. Adding an object twice is a no-op.
func (s *Scene) Add(obj *PlacedObject) {
	if s.Contains(obj) {
		return
	}
	s.objects = append(s.objects, obj)
}

// Remove takes an object out of the scene, clearing the selection when
// the removed object was selected
func (s *Scene) Remove(obj *PlacedObject) {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	if s.selected == obj {
		s.selected = nil
	}
}

// Contains reports whether the object is part of the scene
func (s *Scene) Contains(obj *PlacedObject) bool {
	for _, o := range s.objects {
		if o == obj {
			return true
		}
	}
	return false
}

// Select marks an object as the current selection
func (s *Scene) Select(obj *PlacedObject) {
	if obj == nil || s.Contains(obj) {
		s.selected = obj
	}
}

// Selected returns the currently selected object, or nil
func (s *Scene) Selected() *PlacedObject {
	return s.selected
}

// ClearSelection deselects any selected object
func (s *Scene) ClearSelection() {
	s.selected = nil
}

// ObjectAt returns the placed object nearest along the ray, tested
// against each object's world bounds, with the hit distance
func (s *Scene) ObjectAt(ray geometry.Ray) (*PlacedObject, float64, bool) {
	var nearest *PlacedObject
	nearestDist := 0.0

	for _, obj := range s.objects {
		dist, ok := obj.WorldBounds().IntersectRay(ray)
		if !ok {
			continue
		}
		if nearest == nil || dist < nearestDist {
			nearest = obj
			nearestDist = dist
		}
	}

	if nearest == nil {
		return nil, 0, false
	}
	return nearest, nearestDist, true
}
