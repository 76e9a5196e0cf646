package skew

/*

# Skew binary numerals over complete binary trees

A random access list in the style of Okasaki keeps its elements in a forest of
complete binary trees. Every tree has 2^k - 1 nodes, and every node, interior
or leaf, carries a value. The list of tree sizes, read front to back, is the
skew binary numeral for the length of the list. This package holds the
arithmetic for those numerals, and for navigating inside a single tree, so the
list implementation can stay small and obviously correct.

It mirrors the approach taken for merkle mountain ranges: the shape of the
forest is completely determined by the element count, so most questions about
it can be answered with a little binary arithmetic and without materialising
anything.

## Weights

The weights of a skew binary numeral are the tree sizes

	1, 3, 7, 15, 31, ...   (2^(h+1) - 1 for height index h)

A numeral is canonical when every digit is 0 or 1, except that the lowest non
zero digit may be 2. Listed as tree sizes in ascending order this becomes:
all sizes are strictly increasing, except that the first two may be equal.

	length  sizes (front to back)
	1       [1]
	2       [1 1]
	3       [3]
	4       [1 3]
	5       [1 1 3]
	6       [3 3]
	7       [7]
	8       [1 7]
	10      [3 7]

Note that sizes may skip weights, 8 is [1 7] with no 3, so the only ordering
constraint is the strict increase.

## Increment and decrement

Incrementing never carries more than once. If the first two sizes are equal,
they merge with the new element into a single tree of size 2s+1. Otherwise a
new tree of size 1 goes on the front.

	[1 1 3] + 1 => [3 3]      merge
	[3 3] + 1   => [7]        merge
	[7] + 1     => [1 7]      push

Decrement is the exact inverse. A front tree of size 1 is dropped, any other
front tree of size 2s+1 splits into two trees of size s.

## Navigating a tree

Trees are laid out in pre-order: the root is index 0, its left subtree holds
indices 1..s and its right subtree holds s+1..2s, where s is the child size.
Step performs one level of that descent, so lookup and path copying are both a
loop over Step.

	           0
	       /       \
	      1         4
	     / \       / \
	    2   3     5   6

*/
