package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	got := Vec2{}.Normalize()
	if got != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, -4}
	got := a.Lerp(b, 0.5)
	want := Vec2{5, -2}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 2, 5}
	b := Vec3{0, 2, -5}
	got := a.Lerp(b, 0.5)
	want := Vec3{0, 2, 0}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
	if a.Lerp(b, 0) != a {
		t.Error("Vec3.Lerp(b, 0) should return the start point")
	}
	if a.Lerp(b, 1) != b {
		t.Error("Vec3.Lerp(b, 1) should return the end point")
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1, 2, 8}
	got := a.Distance(b)
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Distance() = %v, want %v", got, want)
	}
}
