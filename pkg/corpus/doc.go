/*
Package corpus turns CSV exports of tweets into training sentences.

A tweet is taken from one comma separated column, stripped of URLs, split on
sentence-ending punctuation, and cleaned word by word: words are lower-cased
and any word containing characters other than letters, digits, underscores and
apostrophes is dropped.
*/
package corpus
