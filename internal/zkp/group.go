package zkp

import (
	"fmt"
	"math/big"
)

// Standardized MODP group constants from RFC 5114, section 2.1 and 2.3.
// p and q are prime, q divides p-1, and alpha generates the order-q
// subgroup. beta is derived as alpha^e mod p for a fixed public exponent,
// so it generates the same subgroup.
const (
	p1024Hex = "B10B8F96A080E01DDE92DE5EAE5D54EC52C99FBCFB06A3C69A6A9DCA52D23B616073E28675A23D189838EF1E2EE652C013ECB4AEA906112324975C3CD49B83BFACCBDD7D90C4BD7098488E9C219A73724EFFD6FAE5644738FAA31A4FF55BCCC0A151AF5F0DC8B4BD45BF37DF365C1A65E68CFDA76D4DA708DF1FB2BC2E4A4371"
	q1024Hex = "F518AA8781A8DF278ABA4E7D64B7CB9D49462353"
	a1024Hex = "A4D1CBD5C3FD34126765A442EFB99905F8104DD258AC507FD6406CFF14266D31266FEA1E5C41564B777E690F5504F213160217B4B01B886A5E91547F9E2749F4D7FBD7D3B9A92EE1909D0D2263F80A76A6A24C087A091F531DBF0A0169B6A28AD662A4D18E73AFA32D779D5918D08BC8858F4DCEF97C2A24855E6EEB22B3B2E5"
	e1024Hex = "266D31266FEA1E5C41564B777E69"

	p2048Hex = "AD107E1E9123A9D0D660FAA79559C51FA20D64E5683B9FD1" +
		"B54B1597B61D0A75E6FA141DF95A56DBAF9A3C407BA1DF15" +
		"EB3D688A309C180E1DE6B85A1274A0A66D3F8152AD6AC212" +
		"9037C9EDEFDA4DF8D91E8FEF55B7394B7AD5B7D0B6C12207" +
		"C9F98D11ED34DBF6C6BA0B2C8BBC27BE6A00E0A0B9C49708" +
		"B3BF8A317091883681286130BC8985DB1602E714415D9330" +
		"278273C7DE31EFDC7310F7121FD5A07415987D9ADC0A486D" +
		"CDF93ACC44328387315D75E198C641A480CD86A1B9E587E8" +
		"BE60E69CC928B2B9C52172E413042E9B23F10B0E16E79763" +
		"C9B53DCF4BA80A29E3FB73C16B8E75B97EF363E2FFA31F71" +
		"CF9DE5384E71B81C0AC4DFFE0C10E64F"
	q2048Hex = "801C0D34C58D93FE997177101F80535A4738CEBCBF389A99B36371EB"
	a2048Hex = "AC4032EF4F2D9AE39DF30B5C8FFDAC506CDEBE7B89998CAF" +
		"74866A08CFE4FFE3A6824A4E10B9A6F0DD921F01A70C4AFA" +
		"AB739D7700C29F52C57DB17C620A8652BE5E9001A8D66AD7" +
		"C17669101999024AF4D027275AC1348BB8A762D0521BC98A" +
		"E247150422EA1ED409939D54DA7460CDB5F6C6B250717CBE" +
		"F180EB34118E98D119529A45D6F834566E3025E316A330EF" +
		"BB77A86F0C1AB15B051AE3D428C8F8ACB70A8137150B8EEB" +
		"10E183EDD19963DDD9E263E4770589EF6AA21E7F5F2FF381" +
		"B539CCE3409D13CD566AFBB48D6C019181E1BCFE94B30269" +
		"EDFE72FE9B6AA4BD7B5A0F1C71CFFF4C19C418E1F6EC0179" +
		"81BC087F2A7065B384B890D3191F2BFA"
	e2048Hex = "F8A4B257B61D0A75E6FA141DF95A"
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("zkp: invalid hex constant %q", s))
	}
	return n
}

func groupFromHex(pHex, qHex, alphaHex, expHex string) *Group {
	p := mustHex(pHex)
	alpha := mustHex(alphaHex)
	return &Group{
		P:     p,
		Q:     mustHex(qHex),
		Alpha: alpha,
		Beta:  Exponentiate(alpha, mustHex(expHex), p),
	}
}

// Group1024 returns the RFC 5114 1024-bit MODP group with a 160-bit
// subgroup order. This is the default production group.
func Group1024() *Group {
	return groupFromHex(p1024Hex, q1024Hex, a1024Hex, e1024Hex)
}

// Group2048 returns the RFC 5114 2048-bit MODP group with a 224-bit
// subgroup order.
func Group2048() *Group {
	return groupFromHex(p2048Hex, q2048Hex, a2048Hex, e2048Hex)
}
