package catalog

import "golang.org/x/text/language"

// defaultEntries returns the built-in English and Somali templates.
// Placeholders are resolved against hotel.Info.Vars() plus handler vars.
func defaultEntries() map[language.Tag]map[string][]string {
	return map[language.Tag]map[string][]string{
		English: {
			CategoryGreetings: {
				"Hello! Welcome to Jees Hotel. How can I assist you today?",
				"Hi there! How may I help you with your stay at Jees Hotel?",
				"Greetings! What can I do for you today?",
			},
			CategoryFarewells: {
				"Thank you for chatting with us! Have a great day!",
				"We're here if you need anything else. Have a wonderful day!",
				"It was a pleasure assisting you. See you soon!",
			},
			CategoryThanks: {
				"You're welcome! Is there anything else I can assist you with?",
			},
			CategoryLanguagePrompt: {
				"Please choose your language:\n1. English (Type 'en' or '1')\n2. Soomaali (Type 'so' or '2')",
			},
			CategoryRoomList: {
				"Here are our room options:\n{room_list}\n\nWould you like more details about any specific room type?",
			},
			CategoryRoomDetails: {
				"Here are the details for the {room_type}:\n" +
					"- Price: {price}\n" +
					"- Size: {size}\n" +
					"- Beds: {beds}\n" +
					"- Bathrooms: {bathrooms}\n\n" +
					"Would you like to book this room, or do you have any further questions?",
			},
			CategoryRoomNotFound: {
				"Sorry, we could not find that room. Here are the available options:\n{room_list}",
			},
			CategoryBookingRedirect: {
				"For room reservations, please visit our online booking portal: {booking_url}",
			},
			CategoryAddress: {
				"We are located at {address}.\nWould you like directions or transportation information?",
			},
			CategoryAmenities: {
				"We offer the following amenities:\n{amenities}\n\nIs there anything specific you'd like to know more about?",
			},
			CategoryCheckTimes: {
				"Our check-in time is {check_in} and check-out is {check_out}.\nWould you like assistance with your booking schedule or any other details?",
			},
			CategoryContact: {
				"You can reach us at:\n📞 Call: {phone}\n📧 Email: {email}\n💬 WhatsApp: {whatsapp}\n\nWe are available 24/7 to assist you.",
			},
			CategoryOffers: {
				"We currently have the following special offers:\n{offers}\n\nWould you like to take advantage of any of these?",
			},
			CategoryPolicies: {
				"Here are our hotel policies:\n{policies}\n\nDo you have any questions or need further clarification on these?",
			},
			CategoryHelp: {
				"Here are some things you can ask me:\n" +
					"- Ask for details about a room (e.g., 'Tell me about the Deluxe Room')\n" +
					"- Request booking information\n" +
					"- Inquire about hotel amenities\n" +
					"- Get contact information\n" +
					"- Ask for directions or location details",
			},
			CategoryLiveAgent: {
				"Connecting you to a live agent. Chat with us directly on WhatsApp: {whatsapp}",
			},
			CategoryFallbackMenu: {
				"I'm sorry, I didn't understand that. Could you try rephrasing it?\n\n" +
					"Here are some topics I can help with:\n" +
					"1️⃣ Room bookings\n" +
					"2️⃣ Amenities details\n" +
					"3️⃣ Special offers\n" +
					"4️⃣ Hotel policies\n\n" +
					"Please type a number or ask another question.",
			},
			CategoryFallbackNudge: {
				"I'm still having trouble understanding. Try asking about room availability, hotel services, or special discounts.\n\n" +
					"Would you like to speak to a live agent instead?",
			},
			CategoryEscalation: {
				"I'm having trouble understanding. Let me connect you to a live agent: {whatsapp}",
			},
			CategoryRateLimited: {
				"Please wait a moment before sending another message.",
			},
		},
		Somali: {
			CategoryGreetings: {
				"Asalaamu calaykum! Ku soo dhawoow Jees Hotel. Sideen kuu caawin karnaa maanta?",
				"Asalaamu calaykum! Ku soo dhawoow Jees Hotel. Maxaan kuu qabaa?",
			},
			CategoryFarewells: {
				"Mahadsanid inaad nala soo xiriirtay. Maalin wanaagsan!",
				"Haddii aad wax su'aalo ah qabto, waxaan joognaa 24/7. Maalin wanaagsan!",
				"Waxaan ku faraxsanahay inaan kaa caawinay. Nabad gelyo!",
			},
			CategoryThanks: {
				"Adigaa mudan! Ma jirtaa wax kale oo aan ku caawin karo?",
			},
			CategoryLanguagePrompt: {
				"Fadlan dooro luqadda:\n1. English (Qor 'en')\n2. Soomaali (Qor 'so')",
			},
			CategoryRoomList: {
				"Kuwani waa qolalka aanu bixino:\n{room_list}\n\nMa rabtaa faahfaahin dheeraad ah oo ku saabsan qol gaar ah?",
			},
			CategoryRoomDetails: {
				"Waa kuwan faahfaahinta qolka {room_type}:\n" +
					"- Qiimaha: {price}\n" +
					"- Cabbirka: {size}\n" +
					"- Sariiro: {beds}\n" +
					"- Musqul: {bathrooms}\n\n" +
					"Ma rabtaa inaan kuu qabto qolkan, mise su'aalo kale ayaad qabtaa?",
			},
			CategoryRoomNotFound: {
				"Waan ka xumahay, qolkaas ma helin. Kuwani waa kuwa la heli karo:\n{room_list}",
			},
			CategoryBookingRedirect: {
				"Si aad qol u buugato, fadlan booqo bogga buugista ee online-ka ah: {booking_url}",
			},
			CategoryAddress: {
				"Waxaan ku yaallaa {address}.\nMa u baahan tahay tilmaamo ama macluumaad gaadiid?",
			},
			CategoryAmenities: {
				"Waxaan bixinaa adeegyada soo socda:\n{amenities}\n\nMa jirtaa wax gaar ah oo aad rabto inaad wax badan ka ogaato?",
			},
			CategoryCheckTimes: {
				"Waqtiga check-in waa {check_in} iyo check-out waa {check_out}.\nMa u baahan tahay caawimaad ku saabsan jadwalka buugista ama faahfaahin kale?",
			},
			CategoryContact: {
				"Waxaad nagala soo xiriiri kartaa:\n📞 Wac: {phone}\n📧 Iimeyl: {email}\n💬 WhatsApp: {whatsapp}\n\nWaxaan nahay 24/7 si aan kuu caawinno.",
			},
			CategoryOffers: {
				"Waxaan haynaa dalacsiimo gaar ah:\n{offers}\n\nMa rabtaa inaad ka faa'iideysato mid ka mid ah?",
			},
			CategoryPolicies: {
				"Kuwani waa qaanuunnadeena:\n{policies}\n\nMa jirtaa wax su'aalo ah oo aad qabto ku saabsan?",
			},
			CategoryHelp: {
				"Waxyaabaha aad i weydiin karto:\n" +
					"- Faahfaahinta qol (tusaale, 'Deluxe Room')\n" +
					"- Macluumaadka buugista\n" +
					"- Adeegyada hotelka\n" +
					"- Macluumaadka xiriirka\n" +
					"- Tilmaamaha goobta",
			},
			CategoryLiveAgent: {
				"Waxaan kugu xiraynaa shaqaale. Si toos ah nagala soo xiriir WhatsApp: {whatsapp}",
			},
			CategoryFallbackMenu: {
				"Waan ka xumahay, ma fahmin su'aashaada. Fadlan isku day mar kale ama dooro mid ka mid ah xulashooyinkan:\n\n" +
					"1️⃣ Qolalka\n" +
					"2️⃣ Adeegyada\n" +
					"3️⃣ Dalacsiinta\n" +
					"4️⃣ Qaanuunnada hotelka\n\n" +
					"Fadlan qor lambar ama su'aal kale weydii.",
			},
			CategoryFallbackNudge: {
				"Wali waan ku dhibtoonayaa fahamka. Isku day inaad weydiiso qolalka la heli karo, adeegyada hotelka, ama dalacsiinta.\n\n" +
					"Ma rabtaa inaad la hadasho shaqaale toos ah?",
			},
			CategoryEscalation: {
				"Waan ku dhibtoonayaa fahamka. Aan kugu xiro shaqaale toos ah: {whatsapp}",
			},
			CategoryRateLimited: {
				"Fadlan sug in yar ka hor intaadan dirin fariin kale.",
			},
		},
	}
}
