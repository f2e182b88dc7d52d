// Package catalog models what a restaurant sells: single items and menus (fixed-price bundles
// of items). Orders reference catalog entries and always price them at their current catalog price.
package catalog
