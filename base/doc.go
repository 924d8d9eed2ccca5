/*

Package base provides base data structures and functions for collection.

The base data structures and functions include:

* Random Generator

* Dynamic Array (package vector)

* Binary Framing (package encoding)

* Logging (package log)

*/
package base
