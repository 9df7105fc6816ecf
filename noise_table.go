package bsdelta

// hashNoise holds the 256 fixed 32-bit words that parameterize the Buzhash
// rolling hash used by HashIndex. These values are part of the hash mode's
// wire/format contract (they determine which blocks of old land in which
// hash slots and therefore which deltas the hash mode produces); they must
// be reproduced bit-exactly, not regenerated.
var hashNoise = [256]uint32{
	0x9be502a4, 0xba7180ea, 0x324e474f, 0x0aab8451, 0x0ced3810, 0x2158a968,
	0x6bbd3771, 0x75a02529, 0x41f05c14, 0xc2264b87, 0x1f67b359, 0xcd2d031d,
	0x49dc0c04, 0xa04ae45c, 0x6ade28a7, 0x2d0254ff, 0xdec60c7c, 0xdef5c084,
	0x0f77ffc8, 0x112021f6, 0x5f6d581e, 0xe35ea3df, 0x3216bfb4, 0xd5a3083d,
	0x7e63e9cd, 0xaa9208f6, 0xda3f3978, 0xfe0e2547, 0x09dfb020, 0xd97472c5,
	0xbbce2ede, 0x121aebd2, 0x0e9fdbeb, 0x7b6f5d9c, 0x84938e43, 0x30694f2d,
	0x86b7a7f8, 0xefaf5876, 0x263812e6, 0xb6e48ddf, 0xce8ed980, 0x4df591e1,
	0x75257b35, 0x2f88dcff, 0xa461fe44, 0xca613b4d, 0xd9803f73, 0xea056205,
	0xccca7a89, 0x0f2dbb07, 0xc53e359e, 0xe80d0137, 0x2b2d2a5d, 0xcfc1391a,
	0x2bb3b6c5, 0xb66aea3c, 0x00ea419e, 0xce5ada84, 0xae1d6712, 0x12f576ba,
	0x117fcbc4, 0xa9d4c775, 0x25b3d616, 0xefda65a8, 0xaff3ef5b, 0x00627e68,
	0x668d1e99, 0x088d0eef, 0xf8fac24d, 0xe77457c7, 0x68d3beb4, 0x921d2acb,
	0x9410eac9, 0xd7f24399, 0xcbdec497, 0x98c99ae1, 0x65802b2c, 0x81e1c3c4,
	0xa130bb09, 0x17a87bad, 0xa70367d6, 0x148658d4, 0x02f33377, 0x8620d8b6,
	0xbdac25bd, 0xb0a6de51, 0xd64c4571, 0xa4185ba0, 0xa342d70f, 0x3f1dc4c1,
	0x042dc3ce, 0x0de89f43, 0xa69b1867, 0x3c064e11, 0xad1e2c3e, 0x9660e8cd,
	0xd36b09ca, 0x4888f228, 0x61a9ac3c, 0xd9561118, 0x3532797e, 0x71a35c22,
	0xecc1376c, 0xab31e656, 0x88bd0d35, 0x423b20dd, 0x38e4651c, 0x3c6397a4,
	0x4a7b12d9, 0x08b1cf33, 0xd0604137, 0xb035fdb8, 0x4916da23, 0xa9349493,
	0xd83daa9b, 0x145f7d95, 0x868531d6, 0xacb18f17, 0x9cd33b6f, 0x193e42b9,
	0x26dfdc42, 0x5069d8fa, 0x5bee24ee, 0x5475d4c6, 0x315b2c0c, 0xf764ef45,
	0x01b6f4eb, 0x60ba3225, 0x8a16777c, 0x4c05cd28, 0x53e8c1d2, 0xc8a76ce5,
	0x8045c1e6, 0x61328752, 0x2ebad322, 0x3444f3e2, 0x91b8af11, 0xb0cee675,
	0x55dbff5a, 0xf7061ee0, 0x27d7d639, 0xa4aef8c9, 0x42ff0e4f, 0x62755468,
	0x1c6ca3f3, 0xe4f522d1, 0x2765fcb3, 0xe20c8a95, 0x3a69aea7, 0x56ab2c4f,
	0x8551e688, 0xe0bc14c2, 0x278676bf, 0x893b6102, 0xb4f0ab3b, 0xb55ddda9,
	0xa04c521f, 0xc980088e, 0x912aeac1, 0x08519bad, 0x991302d3, 0x5b91a25b,
	0x696d9854, 0x9ad8b4bf, 0x41cb7e21, 0xa65d1e03, 0x85791d29, 0x89478aa7,
	0x4581e337, 0x59bae0b1, 0xe0fc9df3, 0x45d9002c, 0x7837464f, 0xda22de3a,
	0x1dc544bd, 0x601d8bad, 0x668b0abc, 0x7a5ebfb1, 0x3ac0b624, 0x5ee16d7d,
	0x9bfac387, 0xbe8ef20c, 0x8d2ae384, 0x819dc7d5, 0x7c4951e7, 0xe60da716,
	0x0c5b0073, 0xb43b3d97, 0xce9974ed, 0x0f691da9, 0x4b616d60, 0x8fa9e819,
	0x3f390333, 0x6f62fad6, 0x5a32b67c, 0x3be6f1c3, 0x05851103, 0xff28828d,
	0xaa43a56a, 0x075d7dd5, 0x248c4b7e, 0x52fde3eb, 0xf72e2eda, 0x5da6f75f,
	0x2f5148d9, 0xcae2aeae, 0xfda6f3e5, 0xff60d8ff, 0x2adc02d2, 0x1dbdbd4c,
	0xd410ad7c, 0x8c284aae, 0x392ef8e0, 0x37d48b3a, 0x6792fe9d, 0xad32ddfa,
	0x1545f24e, 0x3a260f73, 0xb724ca36, 0xc510d751, 0x4f8df992, 0x000b8b37,
	0x292e9b3d, 0xa32f250f, 0x8263d144, 0xfcae0516, 0x1eae2183, 0xd4af2027,
	0xc64afae3, 0xe7b34fe4, 0xdf864aea, 0x80cc71c5, 0x0e814df3, 0x66cc5f41,
	0x853a497a, 0xa2886213, 0x5e34a2ea, 0x0f53ba47, 0x718c484a, 0xfa0f0b12,
	0x33cc59ff, 0x72b48e07, 0x8b6f57bc, 0x29cf886d, 0x1950955b, 0xcd52910c,
	0x4cecef65, 0x05c2cbfe, 0x49df4f6a, 0x1f4c3f34, 0xfadc1a09, 0xf2d65a24,
	0x117f5594, 0xde3a84e6, 0x48db3024, 0xd10ca9b5,
}
