// Package chart renders ranked enrichment terms as horizontal bar
// charts. Bars are scaled by -log10 of the term's p-value, coloured
// on a diverging red-yellow-blue scale so the most significant terms
// sit at the warm end, and annotated with overlapping-gene counts.
package chart
