/*
Package archive keeps a history of generated tweets in a SQLite database.

Each call to Store.SaveBatch records one generation run and the tweets it
produced. The package does not register a SQLite driver; callers open the
database with the driver of their choice and call SetupSchema once.
*/
package archive
