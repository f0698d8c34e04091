// Package layout defines the fixed research project skeleton: the ordered
// directory list, the placeholder file list, and the canonical annotated
// tree text shown in dry runs and generated READMEs.
package layout
