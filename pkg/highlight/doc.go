// Package highlight decides which regions a state emphasizes and how every region looks.
//
// Map and Palette are immutable lookup tables. A Styler combines them into display styles;
// nothing in the package holds mutable global state.
package highlight
