package bsdelta

// hashPrimes is the fixed table BuildHashIndex uses to pick a hash table
// size: the smallest entry not less than 4*ceil(oldlen/hashBlockSize). The
// final sentinel covers any input large enough to exhaust the table.
var hashPrimes = [...]uint32{
	65537, 98317, 147481, 221227, 331841, 497771, 746659, 1120001,
	1680013, 2520031, 3780053, 5670089, 8505137, 12757739, 19136609,
	28704913, 43057369, 64586087, 96879131, 145318741, 217978121,
	326967209, 490450837, 735676303, 1103514463, 1655271719,
	0xffffffff,
}
