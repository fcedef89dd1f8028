/*
Package seqs holds the iter.Seq helpers shared by the builders and the report.

[RandomFloats] pulls values from a [randsrc.Source] one at a time, so the
builders in package lists fill every structure element by element, in
generation order. [Mean] averages the trial timings for the report, and
[Number] constrains the generic reducers.
*/
package seqs
