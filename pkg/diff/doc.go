// Package diff previews what materializing a spec would change in an
// existing template subtree. Text files get unified patches produced with
// github.com/pmezard/go-difflib.
package diff
