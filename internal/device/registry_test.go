package device

import (
	"fmt"
	"testing"
)

func TestWiFiRegistryCapacity(t *testing.T) {
	r := NewWiFiRegistry(DefaultCapacity)

	// Offer twice the capacity; the overflow must be dropped silently.
	for i := 0; i < DefaultCapacity*2; i++ {
		added := r.Add(WiFiNetwork{SSID: fmt.Sprintf("net-%d", i)})
		if i < DefaultCapacity && !added {
			t.Fatalf("Add() = false at %d, want true below capacity", i)
		}
		if i >= DefaultCapacity && added {
			t.Fatalf("Add() = true at %d, want false past capacity", i)
		}
	}

	if r.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", r.Len(), DefaultCapacity)
	}
}

func TestWiFiRegistryReset(t *testing.T) {
	r := NewWiFiRegistry(5)
	r.Add(WiFiNetwork{SSID: "first-pass"})
	r.Add(WiFiNetwork{SSID: "also-first-pass"})

	r.Reset()
	if r.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", r.Len())
	}

	// Next pass fully replaces the previous one, no merging.
	r.Add(WiFiNetwork{SSID: "second-pass"})
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if got := r.At(0).SSID; got != "second-pass" {
		t.Errorf("At(0).SSID = %q, want %q", got, "second-pass")
	}
}

func TestWiFiRegistryOrdering(t *testing.T) {
	r := NewWiFiRegistry(10)
	for i := 0; i < 4; i++ {
		r.Add(WiFiNetwork{SSID: fmt.Sprintf("net-%d", i), Channel: i + 1})
	}

	for i := 0; i < 4; i++ {
		if got := r.At(i).SSID; got != fmt.Sprintf("net-%d", i) {
			t.Errorf("At(%d).SSID = %q, want net-%d", i, got, i)
		}
	}
}

func TestBLERegistryDeduplication(t *testing.T) {
	r := NewBLERegistry(10)

	first := NewBLEDevice("First", "aa:bb:cc:dd:ee:ff", -50, 0, "")
	second := NewBLEDevice("Second", "aa:bb:cc:dd:ee:ff", -70, 0, "")

	if !r.Add(first) {
		t.Fatal("Add(first) = false, want true")
	}
	if r.Add(second) {
		t.Fatal("Add(second) = true, want false for duplicate address")
	}

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	// First seen wins.
	if got := r.At(0).Name; got != "First" {
		t.Errorf("At(0).Name = %q, want %q", got, "First")
	}
}

func TestBLERegistryDedupIsPassLocal(t *testing.T) {
	r := NewBLERegistry(10)
	d := NewBLEDevice("Tag", "aa:bb:cc:dd:ee:ff", -50, 0, "")

	r.Add(d)
	r.Reset()

	// Same address is fine again in the next pass.
	if !r.Add(d) {
		t.Error("Add() after Reset = false, want true")
	}
}

func TestBLERegistryCapacity(t *testing.T) {
	r := NewBLERegistry(3)
	for i := 0; i < 5; i++ {
		r.Add(NewBLEDevice("", fmt.Sprintf("00:00:00:00:00:%02x", i), 0, 0, ""))
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegistryDefaultCapacityFallback(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"zero", 0},
		{"negative", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewWiFiRegistry(tt.capacity).Capacity(); got != DefaultCapacity {
				t.Errorf("NewWiFiRegistry(%d).Capacity() = %d, want %d", tt.capacity, got, DefaultCapacity)
			}
			if got := NewBLERegistry(tt.capacity).Capacity(); got != DefaultCapacity {
				t.Errorf("NewBLERegistry(%d).Capacity() = %d, want %d", tt.capacity, got, DefaultCapacity)
			}
		})
	}
}
