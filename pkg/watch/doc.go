/*
Package watch re-runs the comparison pipeline when any of the input files
change on disk.

The watcher registers the parent directories of the given files with
fsnotify (editors commonly replace files rather than write them in place,
which only the directory watch sees reliably) and filters events down to
the exact input paths. Rapid event bursts are debounced so a save that
touches several files triggers a single re-run.
*/
package watch
