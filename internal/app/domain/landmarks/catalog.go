package landmarks

// District groups the places the planner form offers for one district.
type District struct {
	Name   string
	Places []string
}

// Catalog is the destination list shown on the planner form.
var Catalog = []District{
	{Name: "Chennai", Places: []string{"Marina Beach", "Kapaleeshwarar Temple", "Fort St. George", "Government Museum", "Valluvar Kottam", "Parthasarathy Temple"}},
	{Name: "Madurai", Places: []string{"Meenakshi Amman Temple", "Thirumalai Nayak Palace", "Gandhi Memorial Museum", "Alagar Kovil", "Vandiyur Mariamman Teppakulam"}},
	{Name: "Coimbatore", Places: []string{"Marudamalai Temple", "Dhyanalinga Temple", "VOC Park", "Kovai Kutralam Falls", "Siruvani Waterfalls", "Gedee Car Museum"}},
	{Name: "Tiruchirappalli", Places: []string{"Rockfort Temple", "Sri Ranganathaswamy Temple", "Jambukeswarar Temple", "Kallanai Dam", "Ucchi Pillayar Temple"}},
	{Name: "Salem", Places: []string{"Yercaud", "Kiliyur Falls", "Pagoda Point", "Lady's Seat", "Servaroyan Temple", "Botanical Garden"}},
	{Name: "Tirunelveli", Places: []string{"Nellaiappar Temple", "Courtallam Falls", "Manimuthar Falls", "Papanasam", "Tenkasi"}},
	{Name: "Kanyakumari", Places: []string{"Vivekananda Rock Memorial", "Thiruvalluvar Statue", "Kanyakumari Beach", "Suchindram Temple", "Padmanabhapuram Palace"}},
	{Name: "Nilgiris", Places: []string{"Ooty", "Botanical Gardens", "Doddabetta Peak", "Ooty Lake", "Coonoor", "Pykara Falls", "Avalanche Lake"}},
	{Name: "Dindigul", Places: []string{"Kodaikanal", "Berijam Lake", "Coaker's Walk", "Bryant Park", "Pillar Rocks", "Silver Cascade Falls", "Palani Murugan Temple"}},
	{Name: "Ramanathapuram", Places: []string{"Rameswaram Temple", "Pamban Bridge", "Dhanushkodi", "APJ Abdul Kalam Memorial", "Ramanathaswamy Temple", "Rameswaram", "Erwadi Dargah", "Devipattinam"}},
	{Name: "Thanjavur", Places: []string{"Brihadeeswarar Temple", "Thanjavur Palace", "Saraswathi Mahal Library", "Schwartz Church", "Sivaganga Park"}},
	{Name: "Puducherry", Places: []string{"Auroville", "Promenade Beach", "Aurobindo Ashram", "Paradise Beach", "Basilica of the Sacred Heart", "French Quarter"}},
	{Name: "Chengalpattu", Places: []string{"Mahabalipuram", "Shore Temple", "Pancha Rathas", "Arjuna's Penance", "Crocodile Bank", "Tiger Cave", "Vedanthangal Bird Sanctuary", "Sadras Fort", "Karikili Bird Sanctuary"}},
	{Name: "Kanchipuram", Places: []string{"Kailasanathar Temple", "Ekambareswarar Temple", "Kamakshi Amman Temple", "Varadharaja Perumal Temple", "Silk Weaving Centers"}},
	{Name: "Vellore", Places: []string{"Vellore Fort", "Golden Temple", "Jalakandeswarar Temple", "Yelagiri", "Jalagamparai Waterfalls"}},
	{Name: "Erode", Places: []string{"Bhavani Sangameshwarar Temple", "Vellode Bird Sanctuary", "Bannari Amman Temple", "Kodiveri Dam"}},
	{Name: "Karur", Places: []string{"Kalyana Pasupatheeswarar Temple", "Karur Amaravathi Dam", "Pasupathieswarar Temple"}},
	{Name: "Namakkal", Places: []string{"Namakkal Anjaneyar Temple", "Kolli Hills", "Agaya Gangai Waterfalls", "Siddhar Caves"}},
	{Name: "Tiruvallur", Places: []string{"Pulicat Lake", "Puzhal Lake", "Vadapalani Murugan Temple", "Thiruvallur Temple", "Thiruvallur Veeraraghava Temple"}},
	{Name: "Tiruvannamalai", Places: []string{"Arunachaleswarar Temple", "Skandashramam", "Virupaksha Cave", "Sathanur Dam", "Gingee Fort"}},
	{Name: "Cuddalore", Places: []string{"Pichavaram Mangrove Forest", "Silver Beach", "Thiruvanthipuram Temple", "Padaleeswarar Temple"}},
	{Name: "Villupuram", Places: []string{"Gingee Fort", "Thirukovilur Temple", "Thiruvakkarai Temple"}},
	{Name: "Nagapattinam", Places: []string{"Velankanni Church", "Sikkal Singaravelar Temple", "Nagore Dargah", "Kodikkarai Wildlife Sanctuary"}},
	{Name: "Tiruvarur", Places: []string{"Thyagaraja Temple", "Muthupet Lagoon", "Valangaiman"}},
	{Name: "Mayiladuthurai", Places: []string{"Mayuranathaswami Temple", "Dharasuram Airavatesvara Temple", "Sirkazhi"}},
	{Name: "Ariyalur", Places: []string{"Gangaikonda Cholapuram", "Ariyalur Fossils", "Thirumanur"}},
	{Name: "Perambalur", Places: []string{"Koraiyar Dam", "Kunnandarkoil Cave Temple", "Vayalur Murugan Temple"}},
	{Name: "Pudukkottai", Places: []string{"Sittanavasal Cave", "Thirumayam Fort", "Avudayarkoil Temple", "Kudumiyamalai"}},
	{Name: "Sivaganga", Places: []string{"Chettinad Heritage Mansions", "Pillayarpatti Temple", "Karaikudi", "Thiruppathur"}},
	{Name: "Virudhunagar", Places: []string{"Ayyanar Falls", "Rajapalayam", "Srivilliputhur Temple", "Arulmigu Andal Temple"}},
	{Name: "Theni", Places: []string{"Megamalai", "Suruli Falls", "Kumbakkarai Falls", "Vaigai Dam", "Sothuparai Dam"}},
	{Name: "Tenkasi", Places: []string{"Courtallam Falls", "Kutralam Waterfalls", "Tenkasi Kasi Viswanathar Temple", "Papanasam"}},
	{Name: "Thoothukudi", Places: []string{"Thiruchendur Murugan Temple", "Manapad Church", "Hare Island", "Tuticorin Beach"}},
	{Name: "Tiruppur", Places: []string{"Amaravathi Dam", "Noyyal River", "Thirumoorthy Hills", "Arulmigu Avinashi Temple"}},
	{Name: "Krishnagiri", Places: []string{"Hogenakkal Falls", "Krishnagiri Dam", "Rayakottai Fort", "Shree Parshwa Padmavathi Shaktipeeth"}},
	{Name: "Dharmapuri", Places: []string{"Hogenakkal Falls", "Theerthamalai Temple", "Adhiyamankottai", "Chenraya Perumal Temple"}},
	{Name: "Ranipet", Places: []string{"Javvadhu Hills", "Arani Temple", "Sholinganallur Murugan Temple"}},
	{Name: "Tirupattur", Places: []string{"Ambur Fort", "Vaniyambadi Fort", "Vellimalai Murugan Temple"}},
	{Name: "Kallakurichi", Places: []string{"Gomuki Dam", "Melmalayanur Temple", "Ulundurpet"}},
	{Name: "Kancheepuram", Places: []string{"Kailasanathar Temple", "Kamakshi Temple", "Varadharaja Temple", "Ekambareswarar Temple"}},
}
