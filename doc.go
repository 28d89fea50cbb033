/*
Package yijing models I Ching readings: six-line figures, their canonical
1-64 numbering, the three-coin casting procedure, and an interpreter that
resolves several textual notations into a figure.

# Concept

A figure is six lines, each young or old and yang or yin. Old lines are
"changing": transforming the figure flips their polarity, producing a
second figure. Figures encode to a number in [1, 64] by reading the
polarities as bits, bottom line first. This binary numbering is the
tool's own stable convention, not the classical King Wen sequence.

# Usage

The Oracle bundles the embedded reference data, a caster and the input
interpreter:

	package main

	import (
		"fmt"
		"log"

		"github.com/yijing-go/yijing"
	)

	func main() {
		oracle, err := yijing.New()
		if err != nil {
			log.Fatal(err)
		}

		// Empty input casts a random figure with the three-coin method.
		reading, err := oracle.Reading("32→34", "should we ship?")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(reading.Hexagram.Number()) // 32
		fmt.Println(reading.Hexagram.ChangingPositions())
	}

Accepted notations: a hexagram number ("22"), a hexagram glyph ("䷊"),
six comma-separated line codes ("7,8,9,6,7,8"), or a transition between
two figures ("32→34", "32->34", "䷀→䷁").
*/
package yijing
