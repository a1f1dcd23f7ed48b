/*
Package markov provides a small, in-memory toolkit for training first-order
Markov chain models on sentences of words and walking them to produce new
text.

A Chain records, for every word it has seen, a Distribution of the words that
followed it, plus a Distribution of the words that started a sentence. Walks
are driven by a NumberSource. The default source is random; a ScriptedSource
replays a fixed list of draws, and Chain.FixDistribution builds one that forces
a walk to reproduce an exact sequence of words.

A Chain is not safe for concurrent use. It owns exactly one walk cursor.
*/
package markov
