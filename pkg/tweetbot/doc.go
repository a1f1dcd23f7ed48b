// Package tweetbot generates tweets by walking a Markov chain trained on a
// corpus of tweets, ending each sentence with a randomly chosen punctuation
// mark.
package tweetbot
